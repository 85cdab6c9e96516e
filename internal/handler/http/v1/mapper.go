package v1

import (
	"time"

	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/shenikar/neo_risk_system/internal/service"
)

// ModelToAsteroidResponse преобразует доменную модель в DTO для ответа
func ModelToAsteroidResponse(model *models.Asteroid) *AsteroidResponse {
	if model == nil {
		return nil
	}
	return &AsteroidResponse{
		NeoID:                  model.NeoID,
		Name:                   model.Name,
		NasaJPLURL:             model.NasaJPLURL,
		AbsoluteMagnitude:      model.AbsoluteMagnitude,
		DiameterMinM:           model.DiameterMinM,
		DiameterMaxM:           model.DiameterMaxM,
		IsPotentiallyHazardous: model.IsPotentiallyHazardous,
		CloseApproachDate:      model.CloseApproachDate,
		VelocityKmS:            model.VelocityKmS,
		MissDistanceKm:         model.MissDistanceKm,
		OrbitingBody:           model.OrbitingBody,
		Eccentricity:           model.Eccentricity,
		SemiMajorAxisAU:        model.SemiMajorAxisAU,
		InclinationDeg:         model.InclinationDeg,
		UpdatedAt:              model.UpdatedAt,
	}
}

// ModelsToAsteroidResponses преобразует слайс моделей в слайс DTO
func ModelsToAsteroidResponses(models []*models.Asteroid) []*AsteroidResponse {
	responses := make([]*AsteroidResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAsteroidResponse(model)
	}
	return responses
}

// AssessmentToRiskResponse преобразует оценку объекта каталога в DTO
func AssessmentToRiskResponse(a *service.AsteroidAssessment) *AsteroidRiskResponse {
	return &AsteroidRiskResponse{
		Asteroid:    ModelToAsteroidResponse(a.Asteroid),
		Observation: a.Observation,
		Assessment:  a.Assessment,
		AssessedAt:  a.AssessedAt,
	}
}

// QueryToOverrides преобразует параметры запроса в переопределения оценки
func QueryToOverrides(q AssessRiskQuery) service.AssessOverrides {
	return service.AssessOverrides{
		DensityKgM3:       q.DensityKgM3,
		Material:          risk.Material(q.Material),
		YearsToApproach:   q.YearsToApproach,
		PopulationDensity: q.PopulationDensity,
	}
}

// DTOToObservation собирает наблюдение для движка.
// Явная плотность важнее пресета материала.
func DTOToObservation(dto AssessObservationRequest, c risk.Constants) risk.Observation {
	obs := risk.Observation{
		DiameterM:  dto.DiameterM,
		VelocityMS: dto.VelocityMS,
		Orbit: risk.OrbitalElements{
			Eccentricity:    dto.Eccentricity,
			SemiMajorAxisAU: dto.SemiMajorAxisAU,
			InclinationDeg:  dto.InclinationDeg,
		},
		YearsToApproach:   dto.YearsToApproach,
		PopulationDensity: dto.PopulationDensity,
	}
	if dto.Material != "" {
		if density, ok := c.MaterialDensity(risk.Material(dto.Material)); ok {
			obs.DensityKgM3 = &density
		}
	}
	if dto.DensityKgM3 != nil {
		obs.DensityKgM3 = dto.DensityKgM3
	}
	return obs
}

// DTOToPredictParams преобразует DTO прогноза в параметры сервиса
func DTOToPredictParams(dto PredictImpactRequest) service.PredictImpactParams {
	return service.PredictImpactParams{
		VelocityKmS: dto.VelocityKmS,
		AngleDeg:    dto.AngleDeg,
		DiameterM:   dto.DiameterM,
		MassKg:      dto.MassKg,
		Composition: risk.Material(dto.Composition),
	}
}

// DTOToSyncRange разбирает даты синхронизации, пустая строка дает нулевое время
func DTOToSyncRange(dto SyncFeedRequest) (start, end time.Time, err error) {
	if dto.StartDate != "" {
		if start, err = time.Parse(time.DateOnly, dto.StartDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if dto.EndDate != "" {
		if end, err = time.Parse(time.DateOnly, dto.EndDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// StatsToResponse преобразует статистику сервиса в DTO
func StatsToResponse(s *service.Stats) StatsResponse {
	return StatsResponse{
		TotalAsteroids:     s.TotalAsteroids,
		HazardousAsteroids: s.HazardousAsteroids,
		GeneratedAt:        s.GeneratedAt,
	}
}

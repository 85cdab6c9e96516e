package v1

import (
	"time"

	"github.com/shenikar/neo_risk_system/internal/risk"
)

// AsteroidResponse DTO для ответа с записью каталога
// @Description DTO для ответа с записью каталога
type AsteroidResponse struct {
	NeoID                  string     `json:"neo_id"`
	Name                   string     `json:"name"`
	NasaJPLURL             string     `json:"nasa_jpl_url,omitempty"`
	AbsoluteMagnitude      *float64   `json:"absolute_magnitude_h,omitempty"`
	DiameterMinM           *float64   `json:"diameter_min_m,omitempty"`
	DiameterMaxM           *float64   `json:"diameter_max_m,omitempty"`
	IsPotentiallyHazardous bool       `json:"is_potentially_hazardous"`
	CloseApproachDate      *time.Time `json:"close_approach_date,omitempty"`
	VelocityKmS            *float64   `json:"velocity_km_s,omitempty"`
	MissDistanceKm         *float64   `json:"miss_distance_km,omitempty"`
	OrbitingBody           string     `json:"orbiting_body,omitempty"`
	Eccentricity           *float64   `json:"eccentricity,omitempty"`
	SemiMajorAxisAU        *float64   `json:"semi_major_axis_au,omitempty"`
	InclinationDeg         *float64   `json:"inclination_deg,omitempty"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// AsteroidRiskResponse DTO для оценки риска объекта каталога
// @Description DTO для оценки риска объекта каталога
type AsteroidRiskResponse struct {
	Asteroid    *AsteroidResponse   `json:"asteroid"`
	Observation risk.Observation    `json:"observation"`
	Assessment  risk.RiskAssessment `json:"assessment"`
	AssessedAt  time.Time           `json:"assessed_at"`
}

// AssessRiskQuery параметры, переопределяющие данные каталога
type AssessRiskQuery struct {
	DensityKgM3       *float64 `form:"density_kg_m3" validate:"omitempty,gt=0"`
	Material          string   `form:"material" validate:"omitempty,oneof=iron rock ice"`
	YearsToApproach   *float64 `form:"years_to_approach" validate:"omitempty,gt=0"`
	PopulationDensity *float64 `form:"population_density" validate:"omitempty,gte=0"`
}

// AssessObservationRequest DTO для оценки произвольного наблюдения
// @Description DTO для оценки произвольного наблюдения. Скорость в м/с.
type AssessObservationRequest struct {
	DiameterM         float64  `json:"diameter_m" validate:"required,gt=0"`
	DensityKgM3       *float64 `json:"density_kg_m3,omitempty" validate:"omitempty,gt=0"`
	Material          string   `json:"material,omitempty" validate:"omitempty,oneof=iron rock ice"`
	VelocityMS        *float64 `json:"velocity_m_s,omitempty" validate:"omitempty,gt=0"`
	Eccentricity      *float64 `json:"eccentricity,omitempty" validate:"omitempty,gte=0,lt=1"`
	SemiMajorAxisAU   *float64 `json:"semi_major_axis_au,omitempty" validate:"omitempty,gt=0"`
	InclinationDeg    *float64 `json:"inclination_deg,omitempty" validate:"omitempty,gte=0,lte=180"`
	YearsToApproach   *float64 `json:"years_to_approach,omitempty" validate:"omitempty,gt=0"`
	PopulationDensity *float64 `json:"population_density,omitempty" validate:"omitempty,gte=0"`
}

// PredictImpactRequest DTO для прогноза гипотетического удара
// @Description DTO для прогноза гипотетического удара. Скорость в км/с, угол в градусах.
type PredictImpactRequest struct {
	VelocityKmS float64  `json:"velocity" validate:"required,gt=0"`
	AngleDeg    float64  `json:"angle" validate:"required,gt=0,lte=90"`
	DiameterM   float64  `json:"diameter" validate:"required,gt=0"`
	MassKg      *float64 `json:"mass,omitempty" validate:"omitempty,gt=0"`
	Composition string   `json:"composition,omitempty" validate:"omitempty,oneof=iron rock ice"`
}

// SyncFeedRequest DTO для синхронизации ленты сближений
// @Description Даты в формате YYYY-MM-DD. Пустые даты означают сегодня и сегодня+7 дней.
type SyncFeedRequest struct {
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalAsteroids     int       `json:"total_asteroids"`
	HazardousAsteroids int       `json:"hazardous_asteroids"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

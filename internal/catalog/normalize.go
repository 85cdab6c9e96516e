package catalog

import (
	"errors"
	"time"

	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/risk"
)

// ErrMissingDiameter - у записи каталога нет оценки диаметра
var ErrMissingDiameter = errors.New("catalog: record has no diameter estimate")

const approachDateLayout = "2006-01-02"

// toModel переводит объект NeoWs в запись каталога
func toModel(neo neoObject) *models.Asteroid {
	a := &models.Asteroid{
		NeoID:                  neo.ID,
		Name:                   neo.Name,
		NasaJPLURL:             neo.NasaJPLURL,
		AbsoluteMagnitude:      neo.AbsoluteMagnitudeH.Ptr(),
		DiameterMinM:           neo.EstimatedDiameter.Meters.Min.Ptr(),
		DiameterMaxM:           neo.EstimatedDiameter.Meters.Max.Ptr(),
		IsPotentiallyHazardous: neo.IsPotentiallyHazardous,
	}
	if a.NeoID == "" {
		a.NeoID = neo.NeoReferenceID
	}

	// Берется первое сближение из списка
	if len(neo.CloseApproachData) > 0 {
		approach := neo.CloseApproachData[0]
		a.CloseApproachDate = approachDate(approach)
		a.VelocityKmS = approach.RelativeVelocity.KilometersPerSecond.Ptr()
		a.MissDistanceKm = approach.MissDistance.Kilometers.Ptr()
		a.OrbitingBody = approach.OrbitingBody
	}

	if neo.OrbitalData != nil {
		a.Eccentricity = neo.OrbitalData.Eccentricity.Ptr()
		a.SemiMajorAxisAU = neo.OrbitalData.SemiMajorAxis.Ptr()
		a.InclinationDeg = neo.OrbitalData.Inclination.Ptr()
	}
	return a
}

func approachDate(approach closeApproach) *time.Time {
	if t, err := time.Parse(approachDateLayout, approach.CloseApproachDate); err == nil {
		return &t
	}
	if ms := approach.EpochDateCloseApproach.Ptr(); ms != nil {
		t := time.UnixMilli(int64(*ms)).UTC()
		return &t
	}
	return nil
}

// ToObservation готовит наблюдение для движка оценки риска.
// Диаметр берется по минимальной оценке, скорость переводится из км/с в м/с.
// Отсутствующие поля остаются пустыми, и движок подставляет значения по умолчанию.
func ToObservation(a *models.Asteroid) (risk.Observation, error) {
	if a == nil || a.DiameterMinM == nil {
		return risk.Observation{}, ErrMissingDiameter
	}

	obs := risk.Observation{
		DiameterM: *a.DiameterMinM,
		Orbit: risk.OrbitalElements{
			Eccentricity:    copyFloat(a.Eccentricity),
			SemiMajorAxisAU: copyFloat(a.SemiMajorAxisAU),
			InclinationDeg:  copyFloat(a.InclinationDeg),
		},
	}
	if a.VelocityKmS != nil {
		v := *a.VelocityKmS * 1000
		obs.VelocityMS = &v
	}
	return obs, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

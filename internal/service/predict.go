package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/sirupsen/logrus"
)

const (
	predictionHorizon = 7 * 24 * time.Hour
	maxImpactAngleDeg = 90.0
)

// PredictImpactParams - параметры гипотетического удара
type PredictImpactParams struct {
	VelocityKmS float64
	AngleDeg    float64
	DiameterM   float64
	MassKg      *float64
	Composition risk.Material
}

// ImpactPrediction - прогноз последствий удара с заданными параметрами
type ImpactPrediction struct {
	EnergyMegatons    float64            `json:"energy_release"`
	CraterDiameterKm  float64            `json:"crater_diameter"`
	FireballRadiusKm  float64            `json:"fireball_radius"`
	TsunamiHeightM    float64            `json:"tsunami_height"`
	ImpactProbability float64            `json:"impact_probability"`
	TorinoScale       int                `json:"torino_scale"`
	ThreatLevel       string             `json:"threat_level"`
	ImpactAngleDeg    float64            `json:"impact_angle_deg"`
	Composition       risk.Material      `json:"composition"`
	DensityKgM3       float64            `json:"density_kg_m3"`
	Effects           risk.ImpactEffects `json:"effects"`
	FirstObservation  time.Time          `json:"first_observation"`
	PredictedImpact   time.Time          `json:"predicted_impact"`
	TimeUntilImpact   string             `json:"time_until_impact"`
}

// PredictImpact рассчитывает последствия удара по скорости, размеру и составу.
// Если масса задана, энергия считается по массе, иначе по диаметру и плотности состава.
func (s *riskService) PredictImpact(ctx context.Context, params PredictImpactParams) (*ImpactPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !(params.AngleDeg > 0 && params.AngleDeg <= maxImpactAngleDeg) {
		return nil, fmt.Errorf("service: %w", &risk.InvalidInputError{
			Field:  "angle_deg",
			Value:  params.AngleDeg,
			Reason: "must be within (0, 90]",
		})
	}

	composition := params.Composition
	if composition == "" {
		composition = risk.MaterialRock
	}
	density, ok := s.engine.Constants().MaterialDensity(composition)
	if !ok {
		return nil, fmt.Errorf("service: unknown composition %q: %w", composition, ErrInvalidParams)
	}

	velocityMS := params.VelocityKmS * 1000
	var (
		energy float64
		err    error
	)
	if params.MassKg != nil {
		energy, err = s.engine.KineticEnergyMegatons(*params.MassKg, velocityMS)
	} else {
		energy, err = s.engine.CalculateImpactEnergy(params.DiameterM, density, velocityMS)
	}
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	effects, err := s.engine.CalculateImpactEffects(energy)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	// Для гипотетического тела берется орбита по умолчанию
	probability, err := s.engine.EstimateImpactProbability(risk.OrbitalElements{})
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	torino := s.engine.CalculateTorinoScale(energy, probability)

	tsunami := 1000 * math.Pow(energy, 0.25)
	if math.IsNaN(tsunami) || math.IsInf(tsunami, 0) {
		return nil, fmt.Errorf("service: %w", &risk.DomainError{Quantity: "tsunami_height", Reason: "result is not finite"})
	}

	now := s.clock.Now().UTC()
	prediction := &ImpactPrediction{
		EnergyMegatons:    energy,
		CraterDiameterKm:  effects.CraterDiameterKm,
		FireballRadiusKm:  effects.FireballRadiusKm,
		TsunamiHeightM:    tsunami,
		ImpactProbability: probability,
		TorinoScale:       torino,
		ThreatLevel:       risk.ThreatLevel(torino),
		ImpactAngleDeg:    params.AngleDeg,
		Composition:       composition,
		DensityKgM3:       density,
		Effects:           effects,
		FirstObservation:  now,
		PredictedImpact:   now.Add(predictionHorizon),
		TimeUntilImpact:   fmt.Sprintf("%d days", int(predictionHorizon.Hours()/24)),
	}

	s.logger.WithFields(logrus.Fields{
		"service":      "risk",
		"method":       "PredictImpact",
		"energy_mt":    energy,
		"torino_scale": torino,
	}).Debug("Impact predicted")
	return prediction, nil
}

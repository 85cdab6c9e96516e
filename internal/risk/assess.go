package risk

import "math"

// Пороги шкалы Турина для рекомендаций
const (
	torinoFollowUp   = 1
	torinoEvacuation = 5
	torinoDeflection = 7
)

const (
	actionRoutineMonitoring = "Continue routine monitoring through standard survey programs"
	actionFollowUp          = "Schedule follow-up observations to refine the orbit"
	actionEvacuation        = "Develop evacuation plans for the projected impact corridor"
	actionDeflection        = "Initiate deflection mission planning (kinetic impactor or gravity tractor)"
)

type resolvedObservation struct {
	diameter          float64
	density           float64
	velocity          float64
	eccentricity      float64
	semiMajorAxis     float64
	inclination       float64
	yearsToApproach   float64
	populationDensity float64
}

// AssessRisk выполняет полную оценку риска: энергия, последствия, вероятность,
// пострадавшие, шкалы, зоны риска, временная оценка и меры противодействия.
func (e *Engine) AssessRisk(obs Observation) (RiskAssessment, error) {
	in, err := e.resolve(obs)
	if err != nil {
		return RiskAssessment{}, err
	}

	energy, err := e.CalculateImpactEnergy(in.diameter, in.density, in.velocity)
	if err != nil {
		return RiskAssessment{}, err
	}

	effects, err := e.CalculateImpactEffects(energy)
	if err != nil {
		return RiskAssessment{}, err
	}

	probability := e.impactProbability(in.eccentricity, in.semiMajorAxis, in.inclination)

	casualties, err := e.EstimateCasualties(effects, in.populationDensity)
	if err != nil {
		return RiskAssessment{}, err
	}

	torino := e.CalculateTorinoScale(energy, probability)
	palermo, err := e.CalculatePalermoScale(energy, probability, in.yearsToApproach)
	if err != nil {
		return RiskAssessment{}, err
	}

	period, err := e.OrbitalPeriodYears(in.semiMajorAxis)
	if err != nil {
		return RiskAssessment{}, err
	}

	mitigation, err := mitigationAssessment(energy, torino)
	if err != nil {
		return RiskAssessment{}, err
	}

	return RiskAssessment{
		ImpactProbability: probability,
		TorinoScale:       torino,
		PalermoScale:      palermo,
		ThreatLevel:       ThreatLevel(torino),
		ImpactEffects:     effects,
		CasualtyEstimate:  casualties,
		RiskZones:         riskZones(effects),
		TemporalAssessment: TemporalAssessment{
			OrbitalPeriodYears: period,
			YearsToApproach:    in.yearsToApproach,
			ObservationUrgency: observationUrgency(torino),
		},
		MitigationAssessment: mitigation,
	}, nil
}

func (e *Engine) resolve(obs Observation) (resolvedObservation, error) {
	in := resolvedObservation{
		diameter:          obs.DiameterM,
		density:           e.c.DefaultDensity,
		velocity:          e.c.DefaultVelocity,
		yearsToApproach:   e.c.DefaultYearsToApproach,
		populationDensity: e.c.DefaultPopulationDensity,
	}

	if err := requirePositive("diameter_m", in.diameter); err != nil {
		return in, err
	}
	if obs.DensityKgM3 != nil {
		in.density = *obs.DensityKgM3
		if err := requirePositive("density_kg_m3", in.density); err != nil {
			return in, err
		}
	}
	if obs.VelocityMS != nil {
		in.velocity = *obs.VelocityMS
		if err := requirePositive("velocity_m_s", in.velocity); err != nil {
			return in, err
		}
	}
	if obs.YearsToApproach != nil {
		in.yearsToApproach = *obs.YearsToApproach
		if err := requirePositive("years_to_approach", in.yearsToApproach); err != nil {
			return in, err
		}
	}
	if obs.PopulationDensity != nil {
		in.populationDensity = *obs.PopulationDensity
		if err := requireNonNegative("population_density", in.populationDensity); err != nil {
			return in, err
		}
	}

	var err error
	in.eccentricity, in.semiMajorAxis, in.inclination, err = e.resolveOrbit(obs.Orbit)
	if err != nil {
		return in, err
	}
	return in, nil
}

func riskZones(effects ImpactEffects) RiskZones {
	return RiskZones{
		ImmediateDestruction: RiskZone{
			RadiusKm:    effects.DestructionRadiusKm,
			Description: "Complete devastation, no survival likely",
			Severity:    "Extreme",
		},
		SevereDamage: RiskZone{
			RadiusKm:    effects.Blast.SevereDamageRadiusKm,
			Description: "Severe structural damage, high casualty rate",
			Severity:    "High",
		},
		ModerateDamage: RiskZone{
			RadiusKm:    effects.Blast.BuildingDamageRadiusKm,
			Description: "Significant building damage, moderate casualties",
			Severity:    "Moderate",
		},
		LightDamage: RiskZone{
			RadiusKm:    effects.Blast.GlassBreakingRadiusKm,
			Description: "Window breakage, minor injuries possible",
			Severity:    "Light",
		},
	}
}

// ThreatLevel переводит шкалу Турина в текстовый уровень угрозы
func ThreatLevel(torino int) string {
	switch {
	case torino >= 8:
		return "Severe"
	case torino >= 5:
		return "High"
	case torino >= 2:
		return "Moderate"
	default:
		return "Low"
	}
}

func observationUrgency(torino int) string {
	switch {
	case torino >= torinoDeflection:
		return "Immediate"
	case torino >= torinoEvacuation:
		return "High"
	case torino >= torinoFollowUp:
		return "Elevated"
	default:
		return "Routine"
	}
}

func mitigationAssessment(energyMt float64, torino int) (MitigationAssessment, error) {
	var difficulty string
	switch {
	case energyMt < 1:
		difficulty = "Minimal"
	case energyMt < 100:
		difficulty = "Moderate"
	case energyMt < 10000:
		difficulty = "Difficult"
	default:
		difficulty = "Extreme"
	}

	responseTime := math.Max(2, math.Log10(energyMt))
	if err := checkFinite("response_time_needed_years", responseTime); err != nil {
		return MitigationAssessment{}, err
	}

	actions := []string{actionRoutineMonitoring}
	if torino >= torinoFollowUp {
		actions = []string{actionFollowUp}
	}
	if torino >= torinoEvacuation {
		actions = append(actions, actionEvacuation)
	}
	if torino >= torinoDeflection {
		actions = append(actions, actionDeflection)
	}

	return MitigationAssessment{
		Difficulty:              difficulty,
		ResponseTimeNeededYears: responseTime,
		RecommendedActions:      actions,
	}, nil
}

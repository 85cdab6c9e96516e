package risk

import (
	"fmt"
	"math"
)

// Пороги долгосрочных последствий, Мт
const (
	globalEffectsThresholdMt  = 1000
	climateEffectsThresholdMt = 10000
	extinctionThresholdMt     = 100000
)

// CalculateImpactEffects вычисляет последствия удара по энергии в мегатоннах.
// Для энергии <= 0 формулы не определены, возвращается DomainError.
func (e *Engine) CalculateImpactEffects(energyMt float64) (ImpactEffects, error) {
	if !isFinite(energyMt) || energyMt <= 0 {
		return ImpactEffects{}, &DomainError{
			Quantity: "impact_effects",
			Reason:   fmt.Sprintf("energy must be a positive finite number, got %g Mt", energyMt),
		}
	}

	energyJ := energyMt * e.c.JoulesPerMegaton

	crater := 2 * math.Pow(energyMt, 0.33)
	fireball := math.Pow(energyMt, 0.4)
	destruction := 2 * math.Pow(energyMt, 0.37)

	overpressure1psi := 4.4 * math.Pow(energyMt, 0.33)
	overpressure20psi := 1.1 * math.Pow(energyMt, 0.33)

	thermal := 1.2 * math.Pow(energyMt, 0.4)

	richter := 0.67 * (math.Log10(energyJ) - 4.8)

	effects := ImpactEffects{
		EnergyMegatons:        energyMt,
		CraterDiameterKm:      crater,
		CraterDepthKm:         crater * 0.28 * 0.7,
		FireballRadiusKm:      fireball,
		DestructionRadiusKm:   destruction,
		EjectaBlanketRadiusKm: crater * 1.5,
		Blast: BlastEffects{
			GlassBreakingRadiusKm:  overpressure1psi * 1.2,
			BuildingDamageRadiusKm: overpressure1psi,
			SevereDamageRadiusKm:   overpressure20psi,
		},
		Thermal: ThermalEffects{
			RadiusKm:                 thermal,
			ThirdDegreeBurnsRadiusKm: thermal * 0.7,
		},
		Seismic: SeismicEffects{
			RichterScale: richter,
			FeltRadiusKm: math.Pow(10, 0.5*richter),
		},
		Atmospheric: AtmosphericEffects{
			AirburstAltitudeKm: 8 * math.Log10(energyMt+1),
			FalloutRadiusKm:    destruction * 1.5,
			GlobalEffects:      energyMt > globalEffectsThresholdMt,
		},
		LongTerm: LongTermEffects{
			ClimateEffects:     energyMt > climateEffectsThresholdMt,
			MassExtinctionRisk: energyMt > extinctionThresholdMt,
			DustSettlingDays:   int(math.Floor(10 * math.Log10(energyMt+1))),
		},
	}

	if err := effects.validate(); err != nil {
		return ImpactEffects{}, err
	}
	return effects, nil
}

func (f ImpactEffects) validate() error {
	radii := []struct {
		name  string
		value float64
	}{
		{"crater_diameter_km", f.CraterDiameterKm},
		{"crater_depth_km", f.CraterDepthKm},
		{"fireball_radius_km", f.FireballRadiusKm},
		{"destruction_radius_km", f.DestructionRadiusKm},
		{"ejecta_blanket_radius_km", f.EjectaBlanketRadiusKm},
		{"glass_breaking_radius_km", f.Blast.GlassBreakingRadiusKm},
		{"building_damage_radius_km", f.Blast.BuildingDamageRadiusKm},
		{"severe_damage_radius_km", f.Blast.SevereDamageRadiusKm},
		{"thermal_radius_km", f.Thermal.RadiusKm},
		{"third_degree_burns_radius_km", f.Thermal.ThirdDegreeBurnsRadiusKm},
		{"felt_radius_km", f.Seismic.FeltRadiusKm},
		{"airburst_altitude_km", f.Atmospheric.AirburstAltitudeKm},
		{"fallout_radius_km", f.Atmospheric.FalloutRadiusKm},
	}
	for _, r := range radii {
		if err := checkRadius(r.name, r.value); err != nil {
			return err
		}
	}
	return checkFinite("richter_scale", f.Seismic.RichterScale)
}

// EstimateCasualties оценивает число пострадавших для плотности населения, чел/км²
func (e *Engine) EstimateCasualties(effects ImpactEffects, populationDensity float64) (CasualtyEstimate, error) {
	if err := requireNonNegative("population_density", populationDensity); err != nil {
		return CasualtyEstimate{}, err
	}

	destructionArea := circleArea(effects.DestructionRadiusKm)
	severeArea := circleArea(effects.Blast.SevereDamageRadiusKm)
	affectedArea := circleArea(effects.Blast.GlassBreakingRadiusKm)

	direct, err := headcount("direct_casualties", destructionArea*populationDensity)
	if err != nil {
		return CasualtyEstimate{}, err
	}
	// Зона сильных разрушений может оказаться меньше зоны полного уничтожения
	severe, err := headcount("severe_injuries", math.Max(0, (severeArea-destructionArea)*populationDensity*0.5))
	if err != nil {
		return CasualtyEstimate{}, err
	}
	affected, err := headcount("affected_population", affectedArea*populationDensity)
	if err != nil {
		return CasualtyEstimate{}, err
	}

	return CasualtyEstimate{
		DirectCasualties:   direct,
		SevereInjuries:     severe,
		AffectedPopulation: affected,
		EvacuationRadiusKm: math.Max(effects.DestructionRadiusKm*1.5, effects.Atmospheric.FalloutRadiusKm),
		PopulationDensity:  populationDensity,
	}, nil
}

func circleArea(radiusKm float64) float64 {
	return math.Pi * radiusKm * radiusKm
}

func headcount(quantity string, v float64) (int64, error) {
	n := math.Floor(v)
	if !isFinite(n) || n < 0 || n >= math.MaxInt64 {
		return 0, &DomainError{Quantity: quantity, Reason: fmt.Sprintf("value out of range (%g)", v)}
	}
	return int64(n), nil
}

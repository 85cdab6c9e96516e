// Package risk содержит расчет энергии удара, последствий и шкал опасности (Турин, Палермо).
// Все функции чистые: без ввода-вывода и общего изменяемого состояния.
package risk

import (
	"fmt"
	"math"
)

// Вероятность, ниже которой шкала Турина всегда равна нулю
const torinoNegligibleProbability = 1e-10

// Верхние границы энергетических диапазонов шкалы Турина, Мт
var torinoEnergyLimits = [...]float64{1, 10, 100, 1000}

// Строки - энергетические диапазоны, столбцы - вероятность <1e-6, <1e-4, >=1e-4.
// Для энергии >= 1000 Мт значения задаются в torinoTopBracket.
var torinoTable = [...][3]int{
	{0, 0, 1},
	{0, 1, 2},
	{1, 2, 3},
	{1, 3, 4},
}

// Engine выполняет расчет риска. Безопасен для конкурентного использования.
type Engine struct {
	c Constants
}

// NewEngine создает движок с копией переданных констант
func NewEngine(c Constants) *Engine {
	return &Engine{c: c}
}

// Constants возвращает копию констант движка
func (e *Engine) Constants() Constants {
	return e.c
}

// CalculateImpactEnergy возвращает кинетическую энергию удара в мегатоннах ТНТ
func (e *Engine) CalculateImpactEnergy(diameterM, densityKgM3, velocityMS float64) (float64, error) {
	if err := requirePositive("diameter_m", diameterM); err != nil {
		return 0, err
	}
	if err := requirePositive("density_kg_m3", densityKgM3); err != nil {
		return 0, err
	}
	radius := diameterM / 2
	mass := 4.0 / 3.0 * math.Pi * radius * radius * radius * densityKgM3
	return e.KineticEnergyMegatons(mass, velocityMS)
}

// KineticEnergyMegatons переводит массу и скорость в энергию, Мт
func (e *Engine) KineticEnergyMegatons(massKg, velocityMS float64) (float64, error) {
	if err := requirePositive("mass_kg", massKg); err != nil {
		return 0, err
	}
	if err := requirePositive("velocity_m_s", velocityMS); err != nil {
		return 0, err
	}
	energy := 0.5 * massKg * velocityMS * velocityMS / e.c.JoulesPerMegaton
	if err := checkFinite("energy_megatons", energy); err != nil {
		return 0, err
	}
	return energy, nil
}

// EstimateImpactProbability оценивает вероятность столкновения по орбитальным элементам.
// Результат ограничен [MinImpactProbability, MaxImpactProbability].
func (e *Engine) EstimateImpactProbability(orbit OrbitalElements) (float64, error) {
	ecc, a, inc, err := e.resolveOrbit(orbit)
	if err != nil {
		return 0, err
	}
	return e.impactProbability(ecc, a, inc), nil
}

func (e *Engine) impactProbability(ecc, a, inc float64) float64 {
	base := e.c.BaseImpactProbability * (1 + math.Abs(1-a)) * (1 + ecc)
	p := base * math.Exp(-inc/e.c.InclinationScaleDeg)
	return math.Min(math.Max(p, e.c.MinImpactProbability), e.c.MaxImpactProbability)
}

func (e *Engine) resolveOrbit(orbit OrbitalElements) (ecc, a, inc float64, err error) {
	ecc, a, inc = e.c.DefaultEccentricity, e.c.DefaultSemiMajorAxisAU, e.c.DefaultInclinationDeg

	if orbit.Eccentricity != nil {
		ecc = *orbit.Eccentricity
		if !isFinite(ecc) || ecc < 0 || ecc >= 1 {
			return 0, 0, 0, &InvalidInputError{Field: "eccentricity", Value: ecc, Reason: "must be in [0, 1)"}
		}
	}
	if orbit.SemiMajorAxisAU != nil {
		a = *orbit.SemiMajorAxisAU
		if err := requirePositive("semi_major_axis_au", a); err != nil {
			return 0, 0, 0, err
		}
	}
	if orbit.InclinationDeg != nil {
		inc = *orbit.InclinationDeg
		if !isFinite(inc) || inc < 0 || inc > 180 {
			return 0, 0, 0, &InvalidInputError{Field: "inclination_deg", Value: inc, Reason: "must be in [0, 180]"}
		}
	}
	return ecc, a, inc, nil
}

// CalculateTorinoScale возвращает значение шкалы Турина 0..10
func (e *Engine) CalculateTorinoScale(energyMt, probability float64) int {
	if math.IsNaN(energyMt) || !(probability >= torinoNegligibleProbability) {
		return 0
	}

	col := 2
	switch {
	case probability < 1e-6:
		col = 0
	case probability < 1e-4:
		col = 1
	}

	for i, limit := range torinoEnergyLimits {
		if energyMt < limit {
			return torinoTable[i][col]
		}
	}
	return torinoTopBracket(col, probability)
}

func torinoTopBracket(col int, probability float64) int {
	switch col {
	case 0:
		return 2
	case 1:
		return 4
	}
	scale := 5 + int(math.Floor(math.Log10(probability)+7))
	return min(10, scale)
}

// CalculatePalermoScale сравнивает риск события с фоновой частотой ударов той же энергии.
// Если фоновая частота или горизонт не положительны, возвращает PalermoSentinel.
func (e *Engine) CalculatePalermoScale(energyMt, probability, yearsToApproach float64) (float64, error) {
	if !isFinite(probability) || probability <= 0 {
		return 0, &DomainError{
			Quantity: "palermo_scale",
			Reason:   fmt.Sprintf("impact probability must be positive, got %g", probability),
		}
	}

	background := 0.03 * math.Pow(energyMt, -0.8)
	if !(background > 0) || math.IsInf(background, 0) || !(yearsToApproach > 0) || math.IsInf(yearsToApproach, 0) {
		return PalermoSentinel, nil
	}

	palermo := math.Log10(probability / (background * yearsToApproach))
	if err := checkFinite("palermo_scale", palermo); err != nil {
		return 0, err
	}
	return palermo, nil
}

// OrbitalPeriodYears - период обращения по третьему закону Кеплера
func (e *Engine) OrbitalPeriodYears(semiMajorAxisAU float64) (float64, error) {
	if err := requirePositive("semi_major_axis_au", semiMajorAxisAU); err != nil {
		return 0, err
	}
	aKm := semiMajorAxisAU * e.c.AstronomicalUnitKm
	seconds := 2 * math.Pi * math.Sqrt(aKm*aKm*aKm/(e.c.GravitationalConstant*e.c.SolarMassKg))
	years := seconds / e.c.SecondsPerYear
	if err := checkFinite("orbital_period_years", years); err != nil {
		return 0, err
	}
	return years, nil
}

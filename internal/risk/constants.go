package risk

import "strings"

// Material - пресет состава астероида
type Material string

const (
	MaterialIron Material = "iron"
	MaterialRock Material = "rock"
	MaterialIce  Material = "ice"
)

// PalermoSentinel возвращается, когда фоновая частота или горизонт сближения не определены
const PalermoSentinel = -10.0

// Constants - физические константы и параметры модели.
// Движок копирует структуру при создании, после этого значения не меняются.
type Constants struct {
	GravitationalConstant float64 // км³/(кг·с²)
	SolarMassKg           float64
	AstronomicalUnitKm    float64
	SecondsPerYear        float64
	JoulesPerMegaton      float64

	// Плотности пресетов, кг/м³
	IronDensity float64
	RockDensity float64
	IceDensity  float64

	// Значения для отсутствующих полей наблюдения
	DefaultDensity           float64
	DefaultVelocity          float64 // м/с
	DefaultEccentricity      float64
	DefaultSemiMajorAxisAU   float64
	DefaultInclinationDeg    float64
	DefaultYearsToApproach   float64
	DefaultPopulationDensity float64 // человек/км²

	// Модель вероятности столкновения
	BaseImpactProbability float64
	InclinationScaleDeg   float64
	MinImpactProbability  float64
	MaxImpactProbability  float64
}

// DefaultConstants возвращает набор констант для production
func DefaultConstants() Constants {
	return Constants{
		GravitationalConstant: 6.67430e-20,
		SolarMassKg:           1.989e30,
		AstronomicalUnitKm:    149597870.7,
		SecondsPerYear:        365.25 * 24 * 3600,
		JoulesPerMegaton:      4.184e15,

		IronDensity: 7800,
		RockDensity: 3000,
		IceDensity:  900,

		DefaultDensity:           3000,
		DefaultVelocity:          17000,
		DefaultEccentricity:      0,
		DefaultSemiMajorAxisAU:   1,
		DefaultInclinationDeg:    0,
		DefaultYearsToApproach:   50,
		DefaultPopulationDensity: 300,

		BaseImpactProbability: 1e-6,
		InclinationScaleDeg:   30,
		MinImpactProbability:  1e-10,
		MaxImpactProbability:  1e-3,
	}
}

// Materials возвращает известные пресеты состава
func Materials() []Material {
	return []Material{MaterialIron, MaterialRock, MaterialIce}
}

// MaterialDensity возвращает плотность пресета, регистр не важен
func (c Constants) MaterialDensity(m Material) (float64, bool) {
	switch Material(strings.ToLower(strings.TrimSpace(string(m)))) {
	case MaterialIron:
		return c.IronDensity, true
	case MaterialRock:
		return c.RockDensity, true
	case MaterialIce:
		return c.IceDensity, true
	}
	return 0, false
}

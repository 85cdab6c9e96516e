package risk

// OrbitalElements - орбитальные элементы, nil означает отсутствие значения
type OrbitalElements struct {
	Eccentricity    *float64 `json:"eccentricity,omitempty"`
	SemiMajorAxisAU *float64 `json:"semi_major_axis_au,omitempty"`
	InclinationDeg  *float64 `json:"inclination_deg,omitempty"`
}

// Observation - нормализованная запись об астероиде.
// Отсутствующие необязательные поля заменяются значениями из Constants.
type Observation struct {
	DiameterM         float64         `json:"diameter_m"`
	DensityKgM3       *float64        `json:"density_kg_m3,omitempty"`
	VelocityMS        *float64        `json:"velocity_m_s,omitempty"`
	Orbit             OrbitalElements `json:"orbital_elements"`
	YearsToApproach   *float64        `json:"years_to_approach,omitempty"`
	PopulationDensity *float64        `json:"population_density_per_km2,omitempty"`
}

type BlastEffects struct {
	GlassBreakingRadiusKm  float64 `json:"glass_breaking_radius_km"`
	BuildingDamageRadiusKm float64 `json:"building_damage_radius_km"`
	SevereDamageRadiusKm   float64 `json:"severe_damage_radius_km"`
}

type ThermalEffects struct {
	RadiusKm                 float64 `json:"radius_km"`
	ThirdDegreeBurnsRadiusKm float64 `json:"third_degree_burns_radius_km"`
}

type SeismicEffects struct {
	RichterScale float64 `json:"richter_scale"`
	FeltRadiusKm float64 `json:"felt_radius_km"`
}

type AtmosphericEffects struct {
	AirburstAltitudeKm float64 `json:"airburst_altitude_km"`
	FalloutRadiusKm    float64 `json:"fallout_radius_km"`
	GlobalEffects      bool    `json:"global_effects"`
}

type LongTermEffects struct {
	ClimateEffects     bool `json:"climate_effects"`
	MassExtinctionRisk bool `json:"mass_extinction_risk"`
	DustSettlingDays   int  `json:"dust_settling_days"`
}

// ImpactEffects - физические последствия удара, все радиусы в км
type ImpactEffects struct {
	EnergyMegatons        float64            `json:"energy_megatons"`
	CraterDiameterKm      float64            `json:"crater_diameter_km"`
	CraterDepthKm         float64            `json:"crater_depth_km"`
	FireballRadiusKm      float64            `json:"fireball_radius_km"`
	DestructionRadiusKm   float64            `json:"destruction_radius_km"`
	EjectaBlanketRadiusKm float64            `json:"ejecta_blanket_radius_km"`
	Blast                 BlastEffects       `json:"blast_effects"`
	Thermal               ThermalEffects     `json:"thermal_effects"`
	Seismic               SeismicEffects     `json:"seismic_effects"`
	Atmospheric           AtmosphericEffects `json:"atmospheric_effects"`
	LongTerm              LongTermEffects    `json:"long_term_effects"`
}

// CasualtyEstimate - оценка пострадавших при заданной плотности населения
type CasualtyEstimate struct {
	DirectCasualties   int64   `json:"direct_casualties"`
	SevereInjuries     int64   `json:"severe_injuries"`
	AffectedPopulation int64   `json:"affected_population"`
	EvacuationRadiusKm float64 `json:"evacuation_radius_km"`
	PopulationDensity  float64 `json:"population_density_per_km2"`
}

type RiskZone struct {
	RadiusKm    float64 `json:"radius_km"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
}

type RiskZones struct {
	ImmediateDestruction RiskZone `json:"immediate_destruction"`
	SevereDamage         RiskZone `json:"severe_damage"`
	ModerateDamage       RiskZone `json:"moderate_damage"`
	LightDamage          RiskZone `json:"light_damage"`
}

type TemporalAssessment struct {
	OrbitalPeriodYears float64 `json:"orbital_period_years"`
	YearsToApproach    float64 `json:"years_to_approach"`
	ObservationUrgency string  `json:"observation_urgency"`
}

type MitigationAssessment struct {
	Difficulty              string   `json:"difficulty"`
	ResponseTimeNeededYears float64  `json:"response_time_needed_years"`
	RecommendedActions      []string `json:"recommended_actions"`
}

// RiskAssessment - итог оценки риска для одного наблюдения
type RiskAssessment struct {
	ImpactProbability    float64              `json:"impact_probability"`
	TorinoScale          int                  `json:"torino_scale"`
	PalermoScale         float64              `json:"palermo_scale"`
	ThreatLevel          string               `json:"threat_level"`
	ImpactEffects        ImpactEffects        `json:"impact_effects"`
	CasualtyEstimate     CasualtyEstimate     `json:"casualty_estimate"`
	RiskZones            RiskZones            `json:"risk_zones"`
	TemporalAssessment   TemporalAssessment   `json:"temporal_assessment"`
	MitigationAssessment MitigationAssessment `json:"mitigation_assessment"`
}

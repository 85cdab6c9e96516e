package models

import (
	"time"
)

// Asteroid - запись каталога околоземных объектов.
// Числовые поля могут отсутствовать в каталоге, поэтому это указатели.
type Asteroid struct {
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
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// HasOrbit сообщает, есть ли у записи хотя бы один орбитальный элемент
func (a *Asteroid) HasOrbit() bool {
	return a.Eccentricity != nil || a.SemiMajorAxisAU != nil || a.InclinationDeg != nil
}

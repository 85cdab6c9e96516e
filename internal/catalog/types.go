package catalog

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// flexFloat принимает число в виде JSON-числа, строки или null.
// Нераспознанное значение считается отсутствующим, а не ошибкой.
type flexFloat struct {
	value float64
	valid bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	s := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.value, f.valid = v, true
	return nil
}

// Ptr возвращает значение или nil, если его нет
func (f flexFloat) Ptr() *float64 {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}

// Ответы NeoWs API.

type neoObject struct {
	ID                     string            `json:"id"`
	NeoReferenceID         string            `json:"neo_reference_id"`
	Name                   string            `json:"name"`
	NasaJPLURL             string            `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH     flexFloat         `json:"absolute_magnitude_h"`
	EstimatedDiameter      estimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardous bool              `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData      []closeApproach   `json:"close_approach_data"`
	OrbitalData            *orbitalData      `json:"orbital_data"`
}

type estimatedDiameter struct {
	Meters diameterRange `json:"meters"`
}

type diameterRange struct {
	Min flexFloat `json:"estimated_diameter_min"`
	Max flexFloat `json:"estimated_diameter_max"`
}

type closeApproach struct {
	CloseApproachDate      string    `json:"close_approach_date"`
	EpochDateCloseApproach flexFloat `json:"epoch_date_close_approach"` // миллисекунды
	RelativeVelocity       struct {
		KilometersPerSecond flexFloat `json:"kilometers_per_second"`
	} `json:"relative_velocity"`
	MissDistance struct {
		Kilometers flexFloat `json:"kilometers"`
	} `json:"miss_distance"`
	OrbitingBody string `json:"orbiting_body"`
}

type orbitalData struct {
	Eccentricity  flexFloat `json:"eccentricity"`
	SemiMajorAxis flexFloat `json:"semi_major_axis"`
	Inclination   flexFloat `json:"inclination"`
}

type feedResponse struct {
	ElementCount     int                    `json:"element_count"`
	NearEarthObjects map[string][]neoObject `json:"near_earth_objects"`
}

type browseResponse struct {
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"total_elements"`
		TotalPages    int `json:"total_pages"`
		Number        int `json:"number"`
	} `json:"page"`
	NearEarthObjects []neoObject `json:"near_earth_objects"`
}

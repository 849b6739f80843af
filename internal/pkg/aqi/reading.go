// Package aqi computes air quality indices from pollutant concentrations
// and maps them to severity tiers. Everything here is pure: no I/O, no
// state, identical input always yields identical output.
package aqi

import (
	"fmt"
	"math"
)

// Reading holds one set of pollutant concentrations as entered by the user
// or imported from a station. PM values are µg/m³, NO2/SO2/O3 are ppb,
// CO is ppm.
type Reading struct {
	PM25 float64 `json:"pm25" db:"pm25"`
	PM10 float64 `json:"pm10" db:"pm10"`
	NO2  float64 `json:"no2" db:"no2"`
	SO2  float64 `json:"so2" db:"so2"`
	CO   float64 `json:"co" db:"co"`
	O3   float64 `json:"o3" db:"o3"`
}

// Validate rejects negative and non-finite concentrations. An all-zero
// reading is valid; warning the user about it is the caller's job.
func (r Reading) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"pm25", r.PM25},
		{"pm10", r.PM10},
		{"no2", r.NO2},
		{"so2", r.SO2},
		{"co", r.CO},
		{"o3", r.O3},
	}

	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidReading, f.name)
		}
		if f.val < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidReading, f.name, f.val)
		}
	}

	return nil
}

package aqi

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Index is a computed air quality index value, rounded to one decimal place.
type Index = float64

var (
	ErrInvalidReading  = errors.New("invalid reading")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy selects which of the two index formulas to apply. The source
// material never reconciled them, so both are kept as explicit variants
// instead of being merged into one.
type Strategy string

const (
	// StrategyEPA maps PM2.5 and PM10 through EPA-style breakpoint tables
	// and takes the maximum of the two sub-indices. NO2, SO2, CO and O3 are
	// accepted but not used by this variant.
	StrategyEPA Strategy = "epa-style"

	// StrategyWeighted computes a weighted linear sum over all six
	// pollutants. It has no physical calibration basis but uses every input.
	StrategyWeighted Strategy = "weighted-sum"
)

// ParseStrategy resolves a wire value to a Strategy. Empty input falls back
// to StrategyEPA.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyEPA, nil
	case StrategyEPA, StrategyWeighted:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// breakpoint maps a concentration segment [cLo, cHi] onto an index segment
// [iLo, iHi] by linear interpolation.
type breakpoint struct {
	cLo, cHi float64
	iLo, iHi float64
}

var pm25Breakpoints = []breakpoint{
	{0, 12, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500, 301, 500},
}

var pm10Breakpoints = []breakpoint{
	{0, 54, 0, 50},
	{55, 154, 51, 100},
	{155, 254, 101, 150},
	{255, 354, 151, 200},
	{355, 424, 201, 300},
	{425, 500, 301, 500},
}

// subIndex interpolates a concentration within the first segment whose
// upper bound contains it. Concentrations past the last segment keep
// extrapolating on the last segment's slope.
func subIndex(c float64, table []breakpoint) float64 {
	bp := table[len(table)-1]
	for _, seg := range table {
		if c <= seg.cHi {
			bp = seg
			break
		}
	}

	return (bp.iHi-bp.iLo)/(bp.cHi-bp.cLo)*(c-bp.cLo) + bp.iLo
}

// ComputeIndex derives a single index value from a reading under the given
// strategy. It fails only on invalid input (negative or non-finite
// concentrations) or an unknown strategy.
func ComputeIndex(r Reading, s Strategy) (Index, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	switch s {
	case StrategyEPA:
		idx := subIndex(r.PM25, pm25Breakpoints)
		if pm10 := subIndex(r.PM10, pm10Breakpoints); pm10 > idx {
			idx = pm10
		}
		return round1(idx), nil
	case StrategyWeighted:
		sum := 2.5*r.PM25 + 1.2*r.PM10 + 0.5*r.NO2 + 0.3*r.SO2 + 10*r.CO + 0.4*r.O3
		return round1(sum / 10), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// round1 rounds half away from zero to one decimal place. decimal is used
// so that values like 24.15 land on 24.2 regardless of their float64
// representation.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

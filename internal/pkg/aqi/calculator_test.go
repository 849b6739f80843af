package aqi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndexEPA(t *testing.T) {
	r := Reading{PM25: 35.0, PM10: 70.0, NO2: 40.0, SO2: 20.0, CO: 2.0, O3: 60.0}

	got, err := ComputeIndex(r, StrategyEPA)
	require.NoError(t, err)

	// PM2.5 sub-index 99.158..., PM10 sub-index 58.424...; the max wins.
	assert.Equal(t, 99.2, got)
	assert.Equal(t, "Moderate", Classify(got, ProfileSixTier).Name)
}

func TestComputeIndexEPAIgnoresGasPollutants(t *testing.T) {
	base := Reading{PM25: 35.0, PM10: 70.0}
	loaded := Reading{PM25: 35.0, PM10: 70.0, NO2: 180.0, SO2: 90.0, CO: 40.0, O3: 250.0}

	a, err := ComputeIndex(base, StrategyEPA)
	require.NoError(t, err)
	b, err := ComputeIndex(loaded, StrategyEPA)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeIndexEPASegments(t *testing.T) {
	tests := []struct {
		name string
		r    Reading
		want float64
	}{
		{"first segment scales linearly", Reading{PM25: 12}, 50.0},
		{"pm10 dominates", Reading{PM25: 5, PM10: 154}, 100.0},
		{"hazardous pm25", Reading{PM25: 260}, 308.6},
		{"extrapolates past table end", Reading{PM25: 600}, 579.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeIndex(tt.r, StrategyEPA)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.05)
		})
	}
}

func TestComputeIndexWeighted(t *testing.T) {
	r := Reading{PM25: 35.0, PM10: 70.0, NO2: 40.0, SO2: 20.0, CO: 2.0, O3: 60.0}

	got, err := ComputeIndex(r, StrategyWeighted)
	require.NoError(t, err)

	// (87.5+84+20+6+20+24)/10 = 24.15; rounding is half away from zero,
	// not banker's, so this lands on 24.2.
	assert.Equal(t, 24.2, got)
}

func TestComputeIndexZeroReading(t *testing.T) {
	for _, s := range []Strategy{StrategyEPA, StrategyWeighted} {
		got, err := ComputeIndex(Reading{}, s)
		require.NoError(t, err, s)
		assert.Equal(t, 0.0, got, s)
	}
}

func TestComputeIndexDeterministic(t *testing.T) {
	r := Reading{PM25: 42.3, PM10: 88.8, NO2: 12.0, SO2: 7.5, CO: 1.1, O3: 33.0}

	for _, s := range []Strategy{StrategyEPA, StrategyWeighted} {
		first, err := ComputeIndex(r, s)
		require.NoError(t, err)
		second, err := ComputeIndex(r, s)
		require.NoError(t, err)
		assert.Equal(t, first, second, s)
	}
}

func TestComputeIndexInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		r    Reading
	}{
		{"negative pm25", Reading{PM25: -1}},
		{"negative co", Reading{CO: -0.5}},
		{"nan", Reading{O3: math.NaN()}},
		{"positive inf", Reading{PM10: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeIndex(tt.r, StrategyEPA)
			assert.ErrorIs(t, err, ErrInvalidReading)
		})
	}
}

func TestComputeIndexUnknownStrategy(t *testing.T) {
	_, err := ComputeIndex(Reading{}, Strategy("ml-model"))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyEPA, s)

	s, err = ParseStrategy("weighted-sum")
	require.NoError(t, err)
	assert.Equal(t, StrategyWeighted, s)

	_, err = ParseStrategy("bogus")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

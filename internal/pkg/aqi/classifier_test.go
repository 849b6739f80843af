package aqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		idx  Index
		want string
	}{
		{0, "Good"},
		{50.0, "Good"},
		{50.1, "Moderate"},
		{100.0, "Moderate"},
		{100.1, "Unhealthy for Sensitive Groups"},
		{150.0, "Unhealthy for Sensitive Groups"},
		{150.1, "Unhealthy"},
		{200.0, "Unhealthy"},
		{300.0, "Very Unhealthy"},
		{300.1, "Hazardous"},
		{1200.5, "Hazardous"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.idx, ProfileSixTier).Name, "six-tier %v", tt.idx)
		assert.Equal(t, tt.want, Classify(tt.idx, ProfileThreeClass).Name, "three-class %v", tt.idx)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	for _, p := range []Profile{ProfileSixTier, ProfileThreeClass} {
		prev := -1
		for idx := 0.0; idx <= 600; idx += 0.7 {
			tier := Classify(idx, p)
			assert.GreaterOrEqual(t, tier.Rank, prev, "%s at %v", p, idx)
			prev = tier.Rank
		}
	}
}

func TestClassifySixTierDistinctIcons(t *testing.T) {
	seen := map[string]bool{}
	for _, idx := range []Index{10, 75, 125, 175, 250, 400} {
		tier := Classify(idx, ProfileSixTier)
		assert.False(t, seen[tier.Icon], "icon %q reused", tier.Icon)
		seen[tier.Icon] = true
		assert.NotEmpty(t, tier.IconLarge)
		assert.NotEmpty(t, tier.Message)
		assert.NotEmpty(t, tier.Recommendations)
	}
}

func TestClassifyThreeClassCollapse(t *testing.T) {
	tests := []struct {
		idx   Index
		class string
		color string
	}{
		{25, "good", "#28a745"},
		{75, "moderate", "#ffc107"},
		{125, "moderate", "#ffc107"},
		{175, "poor", "#dc3545"},
		{250, "poor", "#dc3545"},
		{400, "poor", "#dc3545"},
	}

	for _, tt := range tests {
		tier := Classify(tt.idx, ProfileThreeClass)
		assert.Equal(t, tt.class, tier.Class, "%v", tt.idx)
		assert.Equal(t, tt.color, tier.Color, "%v", tt.idx)
	}
}

func TestParseProfile(t *testing.T) {
	p, ok := ParseProfile("")
	assert.True(t, ok)
	assert.Equal(t, ProfileSixTier, p)

	p, ok = ParseProfile("three-class")
	assert.True(t, ok)
	assert.Equal(t, ProfileThreeClass, p)

	_, ok = ParseProfile("five-tier")
	assert.False(t, ok)
}

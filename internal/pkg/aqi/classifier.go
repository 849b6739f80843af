package aqi

// Profile selects which presentation table a tier is resolved against.
// The two source variants shipped slightly different icon/label sets, so
// both are kept selectable instead of being merged.
type Profile string

const (
	// ProfileSixTier gives each of the six tiers its own color, icons,
	// message and recommendation list.
	ProfileSixTier Profile = "six-tier"

	// ProfileThreeClass keeps the six tier names but collapses display
	// styling into three classes (good/moderate/poor) and swaps the
	// recommendations for shorter health tips.
	ProfileThreeClass Profile = "three-class"
)

// ParseProfile resolves a wire value to a Profile. Empty input falls back
// to ProfileSixTier.
func ParseProfile(s string) (Profile, bool) {
	switch Profile(s) {
	case "":
		return ProfileSixTier, true
	case ProfileSixTier, ProfileThreeClass:
		return Profile(s), true
	default:
		return "", false
	}
}

// Tier is the severity record for one index bracket. Rank orders tiers by
// severity, 0 being Good. Class is only set by the three-class profile.
type Tier struct {
	Rank            int      `json:"rank"`
	Name            string   `json:"name"`
	Class           string   `json:"class,omitempty"`
	Color           string   `json:"color"`
	Icon            string   `json:"icon"`
	IconLarge       string   `json:"icon_large,omitempty"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

var sixTierTable = []Tier{
	{
		Rank:      0,
		Name:      "Good",
		Color:     "#28a745",
		Icon:      "✅",
		IconLarge: "😊",
		Message:   "Air quality is good. Safe for outdoor activities.",
		Recommendations: []string{
			"Great day for outdoor activities!",
			"Keep windows open for ventilation",
			"Perfect for exercise and walks",
		},
	},
	{
		Rank:      1,
		Name:      "Moderate",
		Color:     "#ffc107",
		Icon:      "⚠️",
		IconLarge: "😐",
		Message:   "Air quality is moderate. Sensitive individuals should be cautious.",
		Recommendations: []string{
			"Sensitive individuals should limit outdoor exertion",
			"Keep windows closed if sensitive",
			"Reduce prolonged outdoor activities",
		},
	},
	{
		Rank:      2,
		Name:      "Unhealthy for Sensitive Groups",
		Color:     "#ff9800",
		Icon:      "😷",
		IconLarge: "😷",
		Message:   "Unhealthy for sensitive groups. Wear masks if going outside.",
		Recommendations: []string{
			"Wear masks when going outside",
			"Reduce prolonged outdoor activities",
			"Keep windows closed",
			"Sensitive groups should stay indoors",
		},
	},
	{
		Rank:      3,
		Name:      "Unhealthy",
		Color:     "#dc3545",
		Icon:      "🚨",
		IconLarge: "🤢",
		Message:   "Unhealthy air quality. Avoid outdoor activities.",
		Recommendations: []string{
			"Avoid all outdoor activities",
			"Wear N95 masks if necessary",
			"Use air purifiers indoors",
			"Keep windows and doors closed",
		},
	},
	{
		Rank:      4,
		Name:      "Very Unhealthy",
		Color:     "#9c27b0",
		Icon:      "🚫",
		IconLarge: "😫",
		Message:   "Very unhealthy. Stay indoors, wear masks if outside.",
		Recommendations: []string{
			"Stay indoors at all times",
			"Wear N95 masks if absolutely necessary",
			"Use air purifiers",
			"Avoid physical exertion",
		},
	},
	{
		Rank:      5,
		Name:      "Hazardous",
		Color:     "#6c757d",
		Icon:      "☣️",
		IconLarge: "💀",
		Message:   "Hazardous! Emergency conditions. Stay inside!",
		Recommendations: []string{
			"DO NOT go outside",
			"Seal windows and doors",
			"Use air purifiers with HEPA filters",
			"Emergency alert: Seek shelter immediately",
		},
	},
}

var threeClassTable = []Tier{
	{
		Rank:    0,
		Name:    "Good",
		Class:   "good",
		Color:   "#28a745",
		Icon:    "😊",
		Message: "Air quality is satisfactory",
		Recommendations: []string{
			"Air quality is satisfactory",
			"No health risks",
			"Outdoor activities are safe",
		},
	},
	{
		Rank:    1,
		Name:    "Moderate",
		Class:   "moderate",
		Color:   "#ffc107",
		Icon:    "😐",
		Message: "Acceptable air quality",
		Recommendations: []string{
			"Acceptable air quality",
			"Sensitive individuals may experience minor effects",
			"Consider limiting prolonged outdoor exertion",
		},
	},
	{
		Rank:    2,
		Name:    "Unhealthy for Sensitive Groups",
		Class:   "moderate",
		Color:   "#ffc107",
		Icon:    "😷",
		Message: "Sensitive groups should reduce outdoor activities",
		Recommendations: []string{
			"Sensitive groups should reduce outdoor activities",
			"People with lung/heart disease, children & elderly should be cautious",
			"Consider wearing masks outdoors",
		},
	},
	{
		Rank:    3,
		Name:    "Unhealthy",
		Class:   "poor",
		Color:   "#dc3545",
		Icon:    "😷",
		Message: "Everyone may begin to experience health effects",
		Recommendations: []string{
			"Everyone may begin to experience health effects",
			"Sensitive groups should avoid outdoor activities",
			"Wear N95 masks when going outside",
			"Use air purifiers indoors",
		},
	},
	{
		Rank:    4,
		Name:    "Very Unhealthy",
		Class:   "poor",
		Color:   "#dc3545",
		Icon:    "😨",
		Message: "HEALTH WARNING: Very unhealthy conditions",
		Recommendations: []string{
			"HEALTH WARNING: Very unhealthy conditions",
			"Avoid outdoor activities",
			"Keep windows and doors closed",
			"Run air purifiers continuously",
			"Sensitive groups should stay indoors",
		},
	},
	{
		Rank:    5,
		Name:    "Hazardous",
		Class:   "poor",
		Color:   "#dc3545",
		Icon:    "☠️",
		Message: "EMERGENCY CONDITIONS: HAZARDOUS",
		Recommendations: []string{
			"EMERGENCY CONDITIONS: HAZARDOUS",
			"Avoid all outdoor activities",
			"Remain indoors with windows closed",
			"Use air purifiers with HEPA filters",
			"Consider relocating if possible",
			"Seek medical attention if experiencing breathing difficulties",
		},
	},
}

// Classify maps an index value to its severity tier under the given
// profile. It is total over all non-negative reals: upper bounds are
// inclusive (50.0 is Good, 50.1 is Moderate) and everything above 300
// is Hazardous.
func Classify(idx Index, p Profile) Tier {
	table := sixTierTable
	if p == ProfileThreeClass {
		table = threeClassTable
	}

	switch {
	case idx <= 50:
		return table[0]
	case idx <= 100:
		return table[1]
	case idx <= 150:
		return table[2]
	case idx <= 200:
		return table[3]
	case idx <= 300:
		return table[4]
	default:
		return table[5]
	}
}

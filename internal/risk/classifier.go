// Package risk turns a numeric heart-disease risk score into what the user
// is shown: a category, recommendations and a display color. Everything
// here is pure and deterministic.
package risk

// Category is one of five risk buckets.
type Category string

const (
	CategoryLow      Category = "Low"
	CategorySlight   Category = "Slight"
	CategoryModerate Category = "Moderate"
	CategoryHigh     Category = "High"
	CategoryExtreme  Category = "Extreme"
)

// Categories lists every bucket in increasing order of risk.
var Categories = []Category{CategoryLow, CategorySlight, CategoryModerate, CategoryHigh, CategoryExtreme}

// Color is a symbolic display color. It carries no meaning beyond identity.
type Color string

const (
	ColorGreen   Color = "green"
	ColorGold    Color = "gold"
	ColorOrange  Color = "orange"
	ColorCrimson Color = "crimson"
	ColorDarkRed Color = "darkred"
	ColorGray    Color = "gray"
)

// Bucket lower bounds. Buckets are half-open: [0,20) [20,40) [40,60) [60,80) [80,100].
const (
	slightFrom   = 20.0
	moderateFrom = 40.0
	highFrom     = 60.0
	extremeFrom  = 80.0
)

// Categorize maps score to its bucket. It is total: negative scores and NaN
// are Low, scores above 100 are Extreme.
func Categorize(score float64) Category {
	switch {
	case score >= extremeFrom:
		return CategoryExtreme
	case score >= highFrom:
		return CategoryHigh
	case score >= moderateFrom:
		return CategoryModerate
	case score >= slightFrom:
		return CategorySlight
	default:
		return CategoryLow
	}
}

var recommendations = map[Category][]string{
	CategoryLow: {
		"Maintain a healthy lifestyle with a balanced diet and regular exercise.",
		"Continue monitoring your heart health through annual checkups.",
	},
	CategorySlight: {
		"Keep up at least 30 minutes of moderate activity most days.",
		"Limit salt, added sugars and saturated fats.",
		"Check your blood pressure and cholesterol at your next routine visit.",
	},
	CategoryModerate: {
		"Consult your doctor for guidance on improving heart health.",
		"Reduce your intake of sodium, sugars, and unhealthy fats.",
		"Increase your physical activity to at least 45 minutes a day.",
		"Monitor your blood pressure and cholesterol levels regularly.",
	},
	CategoryHigh: {
		"See a cardiologist as soon as possible for a full heart evaluation.",
		"Follow a strict heart-healthy diet low in sodium and trans fats.",
		"Medication may be needed, follow your provider's instructions closely.",
		"Avoid strenuous activity until medically cleared, and monitor symptoms closely.",
	},
	CategoryExtreme: {
		"Seek medical care immediately, call emergency services if you have chest pain, shortness of breath or fainting.",
		"Do not exercise or exert yourself until a doctor has examined you.",
		"Bring this result and a list of your medications to the appointment.",
	},
}

var colors = map[Category]Color{
	CategoryLow:      ColorGreen,
	CategorySlight:   ColorGold,
	CategoryModerate: ColorOrange,
	CategoryHigh:     ColorCrimson,
	CategoryExtreme:  ColorDarkRed,
}

// Recommendations returns the advice for c, most important first. The
// returned slice is a copy and may be modified by the caller.
func Recommendations(c Category) []string {
	recs, ok := recommendations[c]
	if !ok {
		return []string{"No recommendations available."}
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// ColorFor returns the display color of c; unknown categories are gray.
func ColorFor(c Category) Color {
	if col, ok := colors[c]; ok {
		return col
	}
	return ColorGray
}

// Assessment is the classified view of a score handed to the presentation layer.
type Assessment struct {
	Score           float64
	Category        Category
	Recommendations []string
	Color           Color
}

// Classify bundles everything derived from score.
func Classify(score float64) Assessment {
	c := Categorize(score)
	return Assessment{
		Score:           score,
		Category:        c,
		Recommendations: Recommendations(c),
		Color:           ColorFor(c),
	}
}

package nutrition

import (
	"math"
	"strings"
)

// Suggestion is a catalog item offered against the remaining calorie budget.
type Suggestion struct {
	Name  string  `json:"name"`
	Kcal  float64 `json:"kcal"`
	Badge string  `json:"badge"`
}

// RecommendationGrace lets items slightly over budget through.
const RecommendationGrace = 50

// DefaultCatalog is the fixed suggestion pool.
var DefaultCatalog = []Suggestion{
	{Name: "Greek Yogurt", Kcal: 120, Badge: "High Protein"},
	{Name: "Avocado Toast", Kcal: 250, Badge: "Healthy Fats"},
	{Name: "Apple & Peanut Butter", Kcal: 220, Badge: "Balanced"},
	{Name: "Grilled Shrimp", Kcal: 200, Badge: "Lean Protein"},
	{Name: "Minestrone Soup", Kcal: 180, Badge: "Fiber"},
}

// Remaining is the calorie budget left for the day, never negative.
func Remaining(calorieTarget int, net float64) float64 {
	return math.Max(0, float64(calorieTarget)-finite(net))
}

// Recommend returns the catalog items that fit in remaining plus the grace
// margin. When nothing fits, the whole catalog is returned instead.
func Recommend(catalog []Suggestion, remaining float64) []Suggestion {
	fits := make([]Suggestion, 0, len(catalog))
	for _, s := range catalog {
		if s.Kcal <= remaining+RecommendationGrace {
			fits = append(fits, s)
		}
	}
	if len(fits) == 0 {
		return append([]Suggestion(nil), catalog...)
	}
	return fits
}

// FindSuggestion looks up a catalog item by name, ignoring case.
func FindSuggestion(catalog []Suggestion, name string) (Suggestion, bool) {
	name = strings.TrimSpace(name)
	for _, s := range catalog {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Suggestion{}, false
}

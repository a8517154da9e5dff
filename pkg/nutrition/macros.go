package nutrition

import "math"

// Atwater factors.
const (
	KcalPerGramCarbs   = 4
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
)

// MacroTargets holds the normalized split and the gram targets derived from it.
type MacroTargets struct {
	CarbsPct   float64 `json:"carbsPct"`
	ProteinPct float64 `json:"proteinPct"`
	FatPct     float64 `json:"fatPct"`
	Carbs      int     `json:"carbs"`
	Protein    int     `json:"protein"`
	Fat        int     `json:"fat"`
}

// MacroGrams is a gram amount per macro.
type MacroGrams struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// ComputeMacroTargets normalizes r and converts the split of calorieTarget to
// grams. Negative or non-finite ratios count as 0; an all-zero split yields
// 0% / 0 g everywhere. A negative target is treated as 0.
func ComputeMacroTargets(r MacroRatios, calorieTarget int) MacroTargets {
	c := math.Max(0, finite(r.Carbs))
	p := math.Max(0, finite(r.Protein))
	f := math.Max(0, finite(r.Fat))
	sum := c + p + f
	if sum == 0 {
		sum = 1
	}

	t := MacroTargets{
		CarbsPct:   c / sum * 100,
		ProteinPct: p / sum * 100,
		FatPct:     f / sum * 100,
	}
	kcal := math.Max(0, float64(calorieTarget))
	g := gramsFor(t, kcal)
	t.Carbs, t.Protein, t.Fat = g.Carbs, g.Protein, g.Fat
	return t
}

// EstimateConsumedMacros apportions max(0, net) kcal over the target split.
// No per-food macro data is collected, so this is a display approximation and
// not a measurement.
func EstimateConsumedMacros(t MacroTargets, net float64) MacroGrams {
	return gramsFor(t, math.Max(0, finite(net)))
}

func gramsFor(t MacroTargets, kcal float64) MacroGrams {
	return MacroGrams{
		Carbs:   int(roundHalfUp(t.CarbsPct / 100 * kcal / KcalPerGramCarbs)),
		Protein: int(roundHalfUp(t.ProteinPct / 100 * kcal / KcalPerGramProtein)),
		Fat:     int(roundHalfUp(t.FatPct / 100 * kcal / KcalPerGramFat)),
	}
}

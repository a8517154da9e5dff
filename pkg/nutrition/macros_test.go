package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMacroTargetsDefaults(t *testing.T) {
	got := ComputeMacroTargets(MacroRatios{Carbs: 40, Protein: 30, Fat: 30}, 1800)

	assert.InDelta(t, 40.0, got.CarbsPct, 1e-9)
	assert.InDelta(t, 30.0, got.ProteinPct, 1e-9)
	assert.InDelta(t, 30.0, got.FatPct, 1e-9)
	assert.Equal(t, 180, got.Carbs)
	assert.Equal(t, 135, got.Protein)
	assert.Equal(t, 60, got.Fat)
}

func TestComputeMacroTargetsNormalizesWeights(t *testing.T) {
	// 2:1:1 is the same split as 50:25:25.
	a := ComputeMacroTargets(MacroRatios{Carbs: 2, Protein: 1, Fat: 1}, 2000)
	b := ComputeMacroTargets(MacroRatios{Carbs: 50, Protein: 25, Fat: 25}, 2000)
	assert.Equal(t, a, b)
	assert.Equal(t, 250, a.Carbs)
}

func TestComputeMacroTargetsDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		ratios MacroRatios
	}{
		{"all zero", MacroRatios{}},
		{"all negative", MacroRatios{Carbs: -1, Protein: -5, Fat: -3}},
		{"non finite", MacroRatios{Carbs: math.NaN(), Protein: math.Inf(-1), Fat: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeMacroTargets(tc.ratios, 2000)
			assert.Equal(t, MacroTargets{}, got)
		})
	}
}

func TestComputeMacroTargetsNegativeTarget(t *testing.T) {
	got := ComputeMacroTargets(MacroRatios{Carbs: 40, Protein: 30, Fat: 30}, -500)
	assert.Equal(t, 0, got.Carbs)
	assert.Equal(t, 0, got.Protein)
	assert.Equal(t, 0, got.Fat)
}

func TestMacroGramsStayWithinTarget(t *testing.T) {
	// Each gram target is rounded once, so the implied kcal can overshoot by at
	// most half a gram of each macro: 0.5*4 + 0.5*4 + 0.5*9.
	const slack = 8.5
	ratios := []MacroRatios{
		{40, 30, 30}, {1, 1, 1}, {0, 0, 1}, {33, 33, 34}, {7, 11, 13}, {100, 0, 0}, {0.5, 0.25, 0.1},
	}
	for _, target := range []int{0, 1, 1200, 1800, 2000, 2345, 3999} {
		for _, r := range ratios {
			got := ComputeMacroTargets(r, target)
			assert.GreaterOrEqual(t, got.Carbs, 0)
			assert.GreaterOrEqual(t, got.Protein, 0)
			assert.GreaterOrEqual(t, got.Fat, 0)
			implied := float64(4*got.Carbs + 4*got.Protein + 9*got.Fat)
			assert.LessOrEqual(t, implied, float64(target)+slack, "ratios=%v target=%d", r, target)
		}
	}
}

func TestEstimateConsumedMacros(t *testing.T) {
	targets := ComputeMacroTargets(MacroRatios{Carbs: 40, Protein: 30, Fat: 30}, 1800)

	got := EstimateConsumedMacros(targets, 950)
	assert.Equal(t, MacroGrams{Carbs: 95, Protein: 71, Fat: 32}, got)

	assert.Equal(t, MacroGrams{}, EstimateConsumedMacros(targets, -300), "negative net apportions nothing")
}

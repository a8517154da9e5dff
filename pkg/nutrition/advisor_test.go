package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// balanced satisfies every rule so each test can break exactly the ones it wants.
func balanced() TipInputs {
	return TipInputs{
		WaterMl:         2000,
		WaterGoalMl:     2500,
		ProteinTarget:   100,
		ProteinConsumed: 90,
		Steps:           6000,
		StepsGoal:       7000,
		Net:             1700,
		CalorieTarget:   1800,
	}
}

func TestCoachTipRules(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TipInputs)
		kind   TipKind
		text   string
	}{
		{
			name:   "hydration",
			modify: func(in *TipInputs) { in.WaterMl = 1000 },
			kind:   TipHydration,
			text:   "Hydration boost: you're at 40% of your 2.5L goal. Take 3-4 big sips now.",
		},
		{
			name:   "protein gap",
			modify: func(in *TipInputs) { in.ProteinTarget = 135; in.ProteinConsumed = 71 },
			kind:   TipProtein,
			text:   "Protein push: you're ~64g short of today's target. Add Greek yogurt or eggs to your next meal.",
		},
		{
			name:   "steps",
			modify: func(in *TipInputs) { in.Steps = 100 },
			kind:   TipSteps,
			text:   "Step it up: 100 / 7000. A 15-min brisk walk will close the gap.",
		},
		{
			name:   "budget",
			modify: func(in *TipInputs) { in.Net = 1000 },
			kind:   TipBudget,
			text:   "Fuel gently: you still have 800 kcal. Consider a fiber-rich snack to round out the day.",
		},
		{
			name:   "pacing",
			modify: func(*TipInputs) {},
			kind:   TipPacing,
			text:   pacingTip,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := balanced()
			tc.modify(&in)
			got := CoachTip(in)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.text, got.Text)
		})
	}
}

func TestCoachTipHydrationBeatsProtein(t *testing.T) {
	in := balanced()
	in.WaterMl = 0
	in.ProteinTarget = 135
	in.ProteinConsumed = 0

	assert.Equal(t, TipHydration, CoachTip(in).Kind)
}

func TestCoachTipProteinGapBoundary(t *testing.T) {
	in := balanced()
	in.ProteinTarget = 115
	in.ProteinConsumed = 100
	assert.NotEqual(t, TipProtein, CoachTip(in).Kind, "a 15g gap is tolerated")

	in.ProteinTarget = 116
	assert.Equal(t, TipProtein, CoachTip(in).Kind)
}

func TestCoachTipZeroGoals(t *testing.T) {
	in := balanced()
	in.WaterGoalMl = 0
	in.WaterMl = 0
	got := CoachTip(in)
	assert.Equal(t, TipHydration, got.Kind)
	assert.Contains(t, got.Text, "0% of your 0.0L goal")

	in.WaterMl = 1
	in.StepsGoal = 0
	in.Steps = 0
	got = CoachTip(in)
	assert.Equal(t, TipSteps, got.Kind)
	assert.Equal(t, "Step it up: 0 / 0. A 15-min brisk walk will close the gap.", got.Text)
}

package nutrition

import (
	"fmt"
	"math"
)

// TipKind identifies which coaching rule fired.
type TipKind string

const (
	TipHydration TipKind = "hydration"
	TipProtein   TipKind = "protein"
	TipSteps     TipKind = "steps"
	TipBudget    TipKind = "budget"
	TipPacing    TipKind = "pacing"
)

// Tip is the single coaching message shown for a snapshot.
type Tip struct {
	Kind TipKind `json:"kind"`
	Text string  `json:"text"`
}

// TipInputs are the snapshot fields the advisor looks at.
type TipInputs struct {
	WaterMl         int
	WaterGoalMl     int
	ProteinTarget   int
	ProteinConsumed int
	Steps           int
	StepsGoal       int
	Net             float64
	CalorieTarget   int
}

type tipRule struct {
	kind  TipKind
	check func(in TipInputs) (string, bool)
}

// tipRules are evaluated in order; the first match wins.
var tipRules = []tipRule{
	{TipHydration, func(in TipInputs) (string, bool) {
		pct := float64(in.WaterMl) / math.Max(1, float64(in.WaterGoalMl))
		if pct >= 0.6 {
			return "", false
		}
		return fmt.Sprintf("Hydration boost: you're at %d%% of your %sL goal. Take 3-4 big sips now.",
			int(roundHalfUp(pct*100)), ToLiters(in.WaterGoalMl)), true
	}},
	{TipProtein, func(in TipInputs) (string, bool) {
		gap := in.ProteinTarget - in.ProteinConsumed
		if gap <= 15 {
			return "", false
		}
		return fmt.Sprintf("Protein push: you're ~%dg short of today's target. Add Greek yogurt or eggs to your next meal.", gap), true
	}},
	{TipSteps, func(in TipInputs) (string, bool) {
		pct := float64(in.Steps) / math.Max(1, float64(in.StepsGoal))
		if pct >= 0.7 {
			return "", false
		}
		return fmt.Sprintf("Step it up: %d / %d. A 15-min brisk walk will close the gap.", in.Steps, in.StepsGoal), true
	}},
	{TipBudget, func(in TipInputs) (string, bool) {
		target := float64(in.CalorieTarget)
		if in.Net >= target*0.85 {
			return "", false
		}
		return fmt.Sprintf("Fuel gently: you still have %s kcal. Consider a fiber-rich snack to round out the day.",
			FormatKcal(target-in.Net)), true
	}},
}

const pacingTip = "Nice pacing. Keep your meals balanced and finish strong."

// CoachTip picks the highest-priority tip that applies, or the pacing tip.
func CoachTip(in TipInputs) Tip {
	for _, r := range tipRules {
		if text, ok := r.check(in); ok {
			return Tip{Kind: r.kind, Text: text}
		}
	}
	return Tip{Kind: TipPacing, Text: pacingTip}
}

package nutrition

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Snapshot is every derived display metric for the day. It is rebuilt from
// scratch on each read and never stored.
type Snapshot struct {
	Inputs           Inputs                  `json:"inputs"`
	Consumed         float64                 `json:"consumed"`
	Net              float64                 `json:"net"`
	ProgressPct      float64                 `json:"progressPct"`
	WeeklyProjection float64                 `json:"weeklyProjection"`
	Grade            Grade                   `json:"grade"`
	Targets          MacroTargets            `json:"targets"`
	ConsumedMacros   MacroGrams              `json:"consumedMacros"`
	MicrosConsumed   Micros                  `json:"microsConsumed"`
	Remaining        float64                 `json:"remaining"`
	Tip              Tip                     `json:"tip"`
	Recommendations  []Suggestion            `json:"recommendations"`
	Meals            map[Meal][]FoodLogEntry `json:"meals"`
	WaterLiters      string                  `json:"waterLiters"`
	WaterGoalLiters  string                  `json:"waterGoalLiters"`
	Headline         string                  `json:"headline"`
}

// Compute derives a Snapshot from the raw inputs, the running consumed total
// and the food log. A nil catalog means DefaultCatalog.
func Compute(in Inputs, consumed float64, log []FoodLogEntry, catalog []Suggestion) Snapshot {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	target := float64(in.CalorieTarget)
	net := finite(consumed - float64(in.ExerciseCals))
	targets := ComputeMacroTargets(in.Macros, in.CalorieTarget)
	eaten := EstimateConsumedMacros(targets, net)
	remaining := Remaining(in.CalorieTarget, net)

	return Snapshot{
		Inputs:           in,
		Consumed:         consumed,
		Net:              net,
		ProgressPct:      ProgressPct(net, target),
		WeeklyProjection: finite(ProjectWeeklyLoss(target, consumed, float64(in.ExerciseCals))),
		Grade:            GradeDay(net, target),
		Targets:          targets,
		ConsumedMacros:   eaten,
		MicrosConsumed:   EstimateDayMicros(log),
		Remaining:        remaining,
		Tip: CoachTip(TipInputs{
			WaterMl:         in.WaterMl,
			WaterGoalMl:     in.WaterGoalMl,
			ProteinTarget:   targets.Protein,
			ProteinConsumed: eaten.Protein,
			Steps:           in.Steps,
			StepsGoal:       in.StepsGoal,
			Net:             net,
			CalorieTarget:   in.CalorieTarget,
		}),
		Recommendations: Recommend(catalog, remaining),
		Meals:           BucketMeals(log),
		WaterLiters:     ToLiters(in.WaterMl),
		WaterGoalLiters: ToLiters(in.WaterGoalMl),
		Headline:        Headline(in),
	}
}

// Headline is the one-line goal summary shown at the top of the dashboard.
func Headline(in Inputs) string {
	return fmt.Sprintf("Stay within %d kcal, hydrate %sL, and hit %s steps.",
		in.CalorieTarget, ToLiters(in.WaterGoalMl), humanize.Comma(int64(in.StepsGoal)))
}

// Package nutrition holds the daily-nutrition derivation engine: macro targets,
// grading, projections, coaching tips, recommendations and the heuristic
// collaborators (meal photo, barcode, micronutrients, report).
//
// Everything in this package is pure. State lives in the session package.
package nutrition

import "strings"

// Meal is one of the four fixed meal buckets of a day.
type Meal string

const (
	Breakfast Meal = "breakfast"
	Lunch     Meal = "lunch"
	Dinner    Meal = "dinner"
	Snacks    Meal = "snacks"
)

// Meals lists the buckets in display order.
var Meals = []Meal{Breakfast, Lunch, Dinner, Snacks}

// ParseMeal matches s case-insensitively against the known buckets.
func ParseMeal(s string) (Meal, bool) {
	m := Meal(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Meals {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// MacroRatios are relative weights, not required to sum to 100.
type MacroRatios struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// MicroTargets are the daily micronutrient goals.
type MicroTargets struct {
	FiberG     float64 `json:"fiber_g"`
	VitaminCMg float64 `json:"vitaminC_mg"`
	IronMg     float64 `json:"iron_mg"`
}

// Micros is an estimated micronutrient amount for a food or a day.
type Micros struct {
	FiberG     float64 `json:"fiber_g"`
	VitaminCMg float64 `json:"vitaminC_mg"`
	IronMg     float64 `json:"iron_mg"`
}

func (m Micros) add(o Micros) Micros {
	return Micros{
		FiberG:     m.FiberG + o.FiberG,
		VitaminCMg: m.VitaminCMg + o.VitaminCMg,
		IronMg:     m.IronMg + o.IronMg,
	}
}

// Inputs are the raw, user-editable values of the active day.
type Inputs struct {
	CalorieTarget int          `json:"calorieTarget"`
	ExerciseCals  int          `json:"exerciseCals"`
	StepsGoal     int          `json:"stepsGoal"`
	Steps         int          `json:"steps"`
	WaterGoalMl   int          `json:"waterGoalMl"`
	WaterMl       int          `json:"waterMl"`
	Weight        float64      `json:"weight"`
	Macros        MacroRatios  `json:"macroRatios"`
	Micros        MicroTargets `json:"microTargets"`
}

// DefaultInputs mirrors the first-run values of the app.
func DefaultInputs() Inputs {
	return Inputs{
		CalorieTarget: 1800,
		ExerciseCals:  250,
		StepsGoal:     7000,
		Steps:         5800,
		WaterGoalMl:   2500,
		WaterMl:       1000,
		Weight:        150,
		Macros:        MacroRatios{Carbs: 40, Protein: 30, Fat: 30},
		Micros:        MicroTargets{FiberG: 28, VitaminCMg: 75, IronMg: 18},
	}
}

// DefaultConsumed is the running consumed total before anything is stored.
const DefaultConsumed = 1200

// FoodLogEntry is an immutable row of the day's food log.
type FoodLogEntry struct {
	ID   string  `json:"id"`
	Meal Meal    `json:"meal"`
	Name string  `json:"name"`
	Kcal float64 `json:"kcal"`
}

// RecentFood is a row of the "recent foods" memo used for one-tap repeats.
type RecentFood struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kcal float64 `json:"kcal"`
}

// MaxRecentFoods caps the recent memo.
const MaxRecentFoods = 10

// DefaultRecentFoods seeds the memo on first run.
func DefaultRecentFoods() []RecentFood {
	return []RecentFood{
		{ID: "oatmeal", Name: "Oatmeal & Berries", Kcal: 320},
		{ID: "salmon", Name: "Grilled Salmon", Kcal: 450},
		{ID: "yogurt", Name: "Greek Yogurt & Honey", Kcal: 180},
	}
}

// RecentID derives the memo id from a food name: lowercased, whitespace runs
// replaced by a single dash.
func RecentID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

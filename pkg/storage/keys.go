package storage

// KeyPrefix namespaces every key the app writes.
const KeyPrefix = "nm_"

const (
	KeyCalorieTarget = "nm_calorieTarget"
	KeyConsumed      = "nm_consumed"
	KeyExercise      = "nm_exercise"
	KeyStepsGoal     = "nm_stepsGoal"
	KeySteps         = "nm_steps"
	KeyWaterGoal     = "nm_waterGoal"
	KeyWater         = "nm_water"
	KeyWeight        = "nm_weight"
	KeyMacroRatios   = "nm_macroRatios"
	KeyMicroTargets  = "nm_microTargets"
	KeyRecipes       = "nm_recipes"
	KeyFavorites     = "nm_favorites"
	KeySkipped       = "nm_skipped"
	KeyRejected      = "nm_rejected"
	KeyRecipeIndex   = "nm_recipeIndex"
	KeyFoods         = "nm_foods"
	KeyRecent        = "nm_recent"
)

// AllKeys lists the documented keys in a stable order.
var AllKeys = []string{
	KeyCalorieTarget, KeyConsumed, KeyExercise, KeyStepsGoal, KeySteps,
	KeyWaterGoal, KeyWater, KeyWeight, KeyMacroRatios, KeyMicroTargets,
	KeyRecipes, KeyFavorites, KeySkipped, KeyRejected, KeyRecipeIndex,
	KeyFoods, KeyRecent,
}

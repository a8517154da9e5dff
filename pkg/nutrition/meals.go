package nutrition

// BucketMeals partitions the log into the four meal buckets, keeping log
// order inside each bucket. Entries with an unknown meal tag are dropped.
func BucketMeals(log []FoodLogEntry) map[Meal][]FoodLogEntry {
	out := make(map[Meal][]FoodLogEntry, len(Meals))
	for _, m := range Meals {
		out[m] = []FoodLogEntry{}
	}
	for _, e := range log {
		if bucket, ok := out[e.Meal]; ok {
			out[e.Meal] = append(bucket, e)
		}
	}
	return out
}

// SumKcal totals the log. The session keeps its own running total; this is
// used to check the two stay in step.
func SumKcal(log []FoodLogEntry) float64 {
	var total float64
	for _, e := range log {
		total += e.Kcal
	}
	return total
}

package nutrition

import (
	"strconv"
	"strings"
)

// ReportFileName is the suggested download name of the daily report.
const ReportFileName = "nutrimind-daily-report.txt"

// ReportInput is everything the daily report prints.
type ReportInput struct {
	CalorieTarget int
	Consumed      float64
	Exercise      int
	Net           float64
	Grade         Grade
	Projection    float64
	Favorites     []int
}

// Report renders the plain-text daily summary. Line order is fixed.
func Report(in ReportInput) string {
	favs := make([]string, len(in.Favorites))
	for i, id := range in.Favorites {
		favs[i] = strconv.Itoa(id)
	}
	lines := []string{
		"NutriMind Daily Report (Sample)",
		"Calorie target: " + strconv.Itoa(in.CalorieTarget) + " kcal",
		"Consumed: " + FormatKcal(in.Consumed) + " kcal",
		"Exercise: " + strconv.Itoa(in.Exercise) + " kcal",
		"Net: " + FormatKcal(in.Net) + " kcal",
		"Grade: " + string(in.Grade),
		"Projection: " + formatFixed(in.Projection, 2) + " lb/week",
		"Favorites: " + strings.Join(favs, ", "),
	}
	return strings.Join(lines, "\n")
}

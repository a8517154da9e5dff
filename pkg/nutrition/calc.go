package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// KcalPerPound is the usual 3500 kcal ≈ 1 lb body-weight rule.
const KcalPerPound = 3500

// Grade is the letter grade of a day's net intake against target.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Clamp bounds n to [min, max].
func Clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

// roundHalfUp rounds .5 towards +Inf, the way the UI layer rounds.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ToLiters renders ml as liters with exactly one decimal.
func ToLiters(ml int) string {
	return strconv.FormatFloat(roundHalfUp(float64(ml)/100)/10, 'f', 1, 64)
}

// ProjectWeeklyLoss returns the projected pounds lost per week if every day
// looked like today. Negative means a projected gain.
func ProjectWeeklyLoss(calorieTarget, consumed, exercise float64) float64 {
	dailyDeficit := calorieTarget - (consumed - exercise)
	return dailyDeficit * 7 / KcalPerPound
}

// GradeDay grades net against target. A non-positive target grades D.
func GradeDay(net, target float64) Grade {
	if target <= 0 {
		return GradeD
	}
	pct := net / target
	switch {
	case pct >= 0.9 && pct <= 1.1:
		return GradeA
	case (pct >= 0.8 && pct < 0.9) || (pct > 1.1 && pct <= 1.2):
		return GradeB
	case (pct >= 0.7 && pct < 0.8) || (pct > 1.2 && pct <= 1.3):
		return GradeC
	default:
		return GradeD
	}
}

// ProgressPct is net as a percentage of target, bounded to [0, 100].
func ProgressPct(net, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return Clamp(net/target*100, 0, 100)
}

// ParseNumber reads a numeric form field. Blank or non-numeric text is 0.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ToInt truncates v towards zero, saturating at the int range. NaN reads
// as 0.
func ToInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// FormatKcal prints a kcal amount without trailing zeros.
func FormatKcal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFixed prints v with exactly n decimals, rounding half up.
func formatFixed(v float64, n int) string {
	p := math.Pow(10, float64(n))
	r := roundHalfUp(v*p) / p
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', n, 64)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

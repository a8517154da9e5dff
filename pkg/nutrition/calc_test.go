package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestToLiters(t *testing.T) {
	tests := []struct {
		ml   int
		want string
	}{
		{2500, "2.5"},
		{1000, "1.0"},
		{0, "0.0"},
		{2250, "2.3"},
		{1234, "1.2"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ToLiters(tc.ml), "ml=%d", tc.ml)
	}
}

func TestProjectWeeklyLoss(t *testing.T) {
	assert.InDelta(t, 0.8, ProjectWeeklyLoss(2000, 1800, 200), 1e-9)
	assert.InDelta(t, 0.0, ProjectWeeklyLoss(2000, 2000, 0), 1e-9)
	assert.Less(t, ProjectWeeklyLoss(1800, 3000, 0), 0.0, "surplus projects a gain")
}

func TestGradeDay(t *testing.T) {
	tests := []struct {
		name        string
		net, target float64
		want        Grade
	}{
		{"on target", 1000, 1000, GradeA},
		{"lower A edge", 900, 1000, GradeA},
		{"upper A edge", 1100, 1000, GradeA},
		{"under B", 850, 1000, GradeB},
		{"over B", 1150, 1000, GradeB},
		{"under C", 750, 1000, GradeC},
		{"over C", 1250, 1000, GradeC},
		{"far under", 500, 1000, GradeD},
		{"far over", 1400, 1000, GradeD},
		{"zero target", 1000, 0, GradeD},
		{"negative target", 1000, -10, GradeD},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GradeDay(tc.net, tc.target))
		})
	}
}

func TestGradeDayIsScaleInvariant(t *testing.T) {
	assert.Equal(t, GradeDay(900, 1000), GradeDay(90, 100))
	assert.Equal(t, GradeDay(1250, 1000), GradeDay(125, 100))
}

func TestProgressPct(t *testing.T) {
	assert.Equal(t, 50.0, ProgressPct(900, 1800))
	assert.Equal(t, 100.0, ProgressPct(4000, 1800))
	assert.Equal(t, 0.0, ProgressPct(-100, 1800))
	assert.Equal(t, 0.0, ProgressPct(900, 0))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 12.5, ParseNumber("12.5"))
	assert.Equal(t, 320.0, ParseNumber(" 320 "))
	assert.Equal(t, 0.0, ParseNumber("abc"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("NaN"))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "1.70", formatFixed(1.7, 2))
	assert.Equal(t, "0.00", formatFixed(-0.001, 2))
	assert.Equal(t, "-0.80", formatFixed(-0.8, 2))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 2000, ToInt(2000.9))
	assert.Equal(t, -3, ToInt(-3.7))
	assert.Equal(t, math.MaxInt, ToInt(1e30))
	assert.Equal(t, math.MaxInt, ToInt(math.Inf(1)))
	assert.Equal(t, math.MinInt, ToInt(-1e30))
	assert.Equal(t, 0, ToInt(math.NaN()))
}

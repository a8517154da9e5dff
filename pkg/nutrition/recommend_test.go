package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Suggestion) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Name
	}
	return out
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 850.0, Remaining(1800, 950))
	assert.Equal(t, 0.0, Remaining(1800, 2500))
}

func TestRecommendFiltersWithGrace(t *testing.T) {
	got := Recommend(DefaultCatalog, 150)
	assert.Equal(t, []string{"Greek Yogurt", "Grilled Shrimp", "Minestrone Soup"}, names(got))
}

func TestRecommendFallsBackToCatalog(t *testing.T) {
	got := Recommend(DefaultCatalog, 0)
	assert.Equal(t, names(DefaultCatalog), names(got))
}

func TestRecommendNeverEmpty(t *testing.T) {
	for _, remaining := range []float64{0, 10, 69, 70, 150, 1000, 1e9} {
		assert.NotEmpty(t, Recommend(DefaultCatalog, remaining), "remaining=%v", remaining)
	}
	assert.Empty(t, Recommend(nil, 1000))
}

func TestRecommendReturnsCopy(t *testing.T) {
	got := Recommend(DefaultCatalog, 0)
	got[0].Name = "changed"
	assert.Equal(t, "Greek Yogurt", DefaultCatalog[0].Name)
}

func TestFindSuggestion(t *testing.T) {
	s, ok := FindSuggestion(DefaultCatalog, " avocado toast ")
	require.True(t, ok)
	assert.Equal(t, 250.0, s.Kcal)

	_, ok = FindSuggestion(DefaultCatalog, "pizza")
	assert.False(t, ok)
}

package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentID(t *testing.T, d *Deck) int {
	t.Helper()
	c, ok := d.Current()
	require.True(t, ok)
	return c.ID
}

func TestLikeAddsOnceAndAdvances(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)

	res := d.Like()
	assert.True(t, res.Applied)
	assert.True(t, res.Favorites)
	assert.Equal(t, []int{1}, d.FavoriteIDs())
	assert.Equal(t, 2, currentID(t, d))

	d.Undo()
	res = d.Like()
	assert.True(t, res.Applied)
	assert.False(t, res.Favorites, "liking twice does not duplicate")
	assert.Equal(t, []int{1}, d.FavoriteIDs())
}

func TestLikeDoesNotReorder(t *testing.T) {
	d := New(SeedRecipes, []int{3}, nil, nil)
	d.Like()
	assert.Equal(t, []int{3, 1}, d.FavoriteIDs())
}

func TestSkip(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)
	d.Skip()
	d.Skip()
	assert.Equal(t, []int{1, 2}, d.SkippedIDs())
	assert.Equal(t, 3, currentID(t, d))

	d.Skip()
	assert.Equal(t, 1, currentID(t, d), "cursor wraps")
}

func TestSkipThenLikeKeepsBoth(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)
	d.Skip()
	d.Undo()
	d.Like()
	assert.Equal(t, []int{1}, d.SkippedIDs())
	assert.Equal(t, []int{1}, d.FavoriteIDs())
}

func TestSuperLikeMovesToFront(t *testing.T) {
	d := New(SeedRecipes, []int{3, 1, 2}, nil, nil)
	d.Undo() // cursor -> card 3
	require.Equal(t, 3, currentID(t, d))
	d.Undo()
	d.Undo()
	require.Equal(t, 1, currentID(t, d))

	res := d.SuperLike()
	assert.True(t, res.Favorites)
	assert.Equal(t, []int{1, 3, 2}, d.FavoriteIDs())
	assert.Equal(t, 3, len(d.FavoriteIDs()), "no duplicate")
	assert.Equal(t, 2, currentID(t, d))
}

func TestSuperLikeNewCard(t *testing.T) {
	d := New(SeedRecipes, []int{2}, nil, nil)
	d.SuperLike()
	assert.Equal(t, []int{1, 2}, d.FavoriteIDs())
}

func TestRejectRemovesCardAndResetsCursor(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)
	d.Skip()
	require.Equal(t, 2, currentID(t, d))

	before := d.Len()
	res := d.Reject()
	assert.True(t, res.Applied)
	assert.True(t, res.Rejected)
	assert.True(t, res.Cards)
	assert.Equal(t, before-1, d.Len())
	assert.Equal(t, []int{2}, d.RejectedIDs())
	assert.Equal(t, 0, d.Cursor())
	for _, c := range d.Cards() {
		assert.NotEqual(t, 2, c.ID)
	}
}

func TestEmptyDeckIsNoop(t *testing.T) {
	d := New(SeedRecipes[:1], nil, nil, nil)
	d.Reject()
	require.Equal(t, 0, d.Len())

	_, ok := d.Current()
	assert.False(t, ok)
	for name, act := range map[string]func() Result{
		"like":  d.Like,
		"skip":  d.Skip,
		"super": d.SuperLike,
		"no":    d.Reject,
		"undo":  d.Undo,
	} {
		assert.Equal(t, Result{}, act(), name)
	}
	assert.Empty(t, d.FavoriteIDs())
	assert.Empty(t, d.SkippedIDs())
	assert.Equal(t, []int{1}, d.RejectedIDs())
	assert.Equal(t, 0, d.Cursor())
}

func TestUndoWrapsAndKeepsMarks(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)
	d.Undo()
	assert.Equal(t, 3, currentID(t, d))

	d.Like() // likes 3, wraps to 1
	assert.Equal(t, 1, currentID(t, d))
	d.Undo()
	assert.Equal(t, 3, currentID(t, d))
	assert.True(t, d.IsFavorite(3), "undo is a view rewind, not a transaction")
}

func TestNewCopiesCards(t *testing.T) {
	cards := append([]RecipeCard(nil), SeedRecipes...)
	d := New(cards, nil, nil, nil)
	cards[0].Title = "changed"
	c, _ := d.Current()
	assert.Equal(t, "Salmon Power Bowl", c.Title)
}

func TestFavoritesStrip(t *testing.T) {
	d := New(SeedRecipes, []int{3, 99, 1}, nil, nil)
	d.Reject() // card 1 leaves the deck but stays in the seed catalog

	got := d.Favorites(SeedRecipes, FavoritesStripSize)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 1, got[1].ID)

	assert.Len(t, d.Favorites(SeedRecipes, 1), 1)
	assert.Empty(t, New(nil, nil, nil, nil).Favorites(SeedRecipes, 9))
}

func TestSeekClampsIntoDeck(t *testing.T) {
	d := New(SeedRecipes, nil, nil, nil)
	d.Seek(2)
	assert.Equal(t, 3, currentID(t, d))
	d.Seek(10)
	assert.Equal(t, 2, d.Cursor())
	d.Seek(-1)
	assert.Equal(t, 0, d.Cursor())

	empty := New(nil, nil, nil, nil)
	empty.Seek(3)
	assert.Equal(t, 0, empty.Cursor())
}

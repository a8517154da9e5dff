package session

import (
	"github.com/nutrimind/nutrimind/pkg/deck"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

// DeckState is a read-only view of the recipe deck.
type DeckState struct {
	Current   *deck.RecipeCard  `json:"current"`
	Cursor    int               `json:"cursor"`
	Cards     []deck.RecipeCard `json:"cards"`
	Favorites []int             `json:"favorites"`
	Skipped   []int             `json:"skipped"`
	Rejected  []int             `json:"rejected"`
}

// Deck returns the current deck state.
func (s *Session) Deck() DeckState {
	st := DeckState{
		Cursor:    s.deck.Cursor(),
		Cards:     s.deck.Cards(),
		Favorites: s.deck.FavoriteIDs(),
		Skipped:   s.deck.SkippedIDs(),
		Rejected:  s.deck.RejectedIDs(),
	}
	if c, ok := s.deck.Current(); ok {
		st.Current = &c
	}
	return st
}

// FavoriteRecipes resolves the favorites strip, looking up ids in the deck and
// then in the seed recipes.
func (s *Session) FavoriteRecipes() []deck.RecipeCard {
	return s.deck.Favorites(deck.SeedRecipes, deck.FavoritesStripSize)
}

// The swipe actions return false when the deck is empty.

func (s *Session) LikeRecipe() bool      { return s.swipe(s.deck.Like) }
func (s *Session) SkipRecipe() bool      { return s.swipe(s.deck.Skip) }
func (s *Session) SuperLikeRecipe() bool { return s.swipe(s.deck.SuperLike) }
func (s *Session) RejectRecipe() bool    { return s.swipe(s.deck.Reject) }
func (s *Session) UndoRecipe() bool      { return s.swipe(s.deck.Undo) }

// swipe runs a deck action and writes back only the sets it changed, plus
// the cursor when it moved.
func (s *Session) swipe(action func() deck.Result) bool {
	before := s.deck.Cursor()
	res := action()
	if res.Favorites {
		s.persist(storage.KeyFavorites, s.deck.FavoriteIDs())
	}
	if res.Skipped {
		s.persist(storage.KeySkipped, s.deck.SkippedIDs())
	}
	if res.Rejected {
		s.persist(storage.KeyRejected, s.deck.RejectedIDs())
	}
	if res.Cards {
		s.persist(storage.KeyRecipes, s.deck.Cards())
	}
	if s.deck.Cursor() != before {
		s.persist(storage.KeyRecipeIndex, s.deck.Cursor())
	}
	return res.Applied
}

package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/nutrimind/nutrimind/pkg/deck"
	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

// lookup reads key and reports whether a usable value of the wanted shape is
// there. Anything else means "use the default", logged at debug.
func (s *Session) lookup(ctx context.Context, key string, valid func(gjson.Result) bool) (gjson.Result, bool) {
	r, err := storage.Lookup(ctx, s.store, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Debugf("Using default for %s: %v", key, err)
		}
		return r, false
	}
	if !valid(r) {
		s.log.Debugf("Using default for %s: unexpected value %s", key, r.Raw)
		return r, false
	}
	return r, true
}

func isNumber(r gjson.Result) bool { return r.Type == gjson.Number }

func (s *Session) loadInt(ctx context.Context, key string, def int) int {
	r, ok := s.lookup(ctx, key, isNumber)
	if !ok {
		return def
	}
	return int(r.Int())
}

func (s *Session) loadFloat(ctx context.Context, key string, def float64) float64 {
	r, ok := s.lookup(ctx, key, isNumber)
	if !ok {
		return def
	}
	return r.Float()
}

// Object fields are coerced one by one, so a single bad field reads as 0
// instead of throwing the whole object away.
func (s *Session) loadMacroRatios(ctx context.Context, def nutrition.MacroRatios) nutrition.MacroRatios {
	r, ok := s.lookup(ctx, storage.KeyMacroRatios, gjson.Result.IsObject)
	if !ok {
		return def
	}
	return nutrition.MacroRatios{
		Carbs:   r.Get("carbs").Float(),
		Protein: r.Get("protein").Float(),
		Fat:     r.Get("fat").Float(),
	}
}

func (s *Session) loadMicroTargets(ctx context.Context, def nutrition.MicroTargets) nutrition.MicroTargets {
	r, ok := s.lookup(ctx, storage.KeyMicroTargets, gjson.Result.IsObject)
	if !ok {
		return def
	}
	return nutrition.MicroTargets{
		FiberG:     r.Get("fiber_g").Float(),
		VitaminCMg: r.Get("vitaminC_mg").Float(),
		IronMg:     r.Get("iron_mg").Float(),
	}
}

func (s *Session) loadIDs(ctx context.Context, key string) []int {
	r, ok := s.lookup(ctx, key, gjson.Result.IsArray)
	if !ok {
		return nil
	}
	var ids []int
	r.ForEach(func(_, v gjson.Result) bool {
		if isNumber(v) {
			ids = append(ids, int(v.Int()))
		}
		return true
	})
	return ids
}

// Rows that are not objects with a usable id or name are dropped; the rest
// of the array is kept.
func (s *Session) loadRecipes(ctx context.Context) []deck.RecipeCard {
	r, ok := s.lookup(ctx, storage.KeyRecipes, gjson.Result.IsArray)
	if !ok {
		return deck.SeedRecipes
	}
	cards := []deck.RecipeCard{}
	r.ForEach(func(_, v gjson.Result) bool {
		id := v.Get("id")
		if !v.IsObject() || !isNumber(id) {
			return true
		}
		cards = append(cards, deck.RecipeCard{
			ID:       int(id.Int()),
			Title:    v.Get("title").String(),
			Category: v.Get("category").String(),
			Image:    v.Get("img").String(),
		})
		return true
	})
	return cards
}

func (s *Session) loadFoods(ctx context.Context) []nutrition.FoodLogEntry {
	r, ok := s.lookup(ctx, storage.KeyFoods, gjson.Result.IsArray)
	if !ok {
		return []nutrition.FoodLogEntry{}
	}
	foods := []nutrition.FoodLogEntry{}
	r.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if !v.IsObject() || name == "" {
			return true
		}
		id := v.Get("id").String()
		if id == "" {
			id = uuid.NewString()
		}
		foods = append(foods, nutrition.FoodLogEntry{
			ID:   id,
			Meal: nutrition.Meal(v.Get("meal").String()),
			Name: name,
			Kcal: v.Get("kcal").Float(),
		})
		return true
	})
	return foods
}

func (s *Session) loadRecent(ctx context.Context) []nutrition.RecentFood {
	r, ok := s.lookup(ctx, storage.KeyRecent, gjson.Result.IsArray)
	if !ok {
		return nutrition.DefaultRecentFoods()
	}
	recent := []nutrition.RecentFood{}
	r.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if !v.IsObject() || name == "" {
			return true
		}
		id := v.Get("id").String()
		if id == "" {
			id = nutrition.RecentID(name)
		}
		recent = append(recent, nutrition.RecentFood{ID: id, Name: name, Kcal: v.Get("kcal").Float()})
		return len(recent) < nutrition.MaxRecentFoods
	})
	return recent
}

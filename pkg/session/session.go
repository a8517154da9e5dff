// Package session owns the state of the active day: raw inputs, the food log,
// the recent-foods memo and the recipe deck. Every mutation writes the keys
// it touched back to a storage.Store; reads derive a fresh
// nutrition.Snapshot.
//
// A Session is not safe for concurrent use. Callers that share one (the HTTP
// server) serialize access themselves.
package session

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nutrimind/nutrimind/pkg/deck"
	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

// Logger abstracts logging so callers can use logrus or anything else with
// the same method set.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Quick-add calorie guess bounds when no kcal is typed.
const (
	quickAddMinKcal     = 50
	quickAddMaxKcal     = 900
	quickAddKcalPerRune = 10
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Nil keeps the silent default.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCatalog replaces the snack catalog used for recommendations.
func WithCatalog(c []nutrition.Suggestion) Option {
	return func(s *Session) { s.catalog = c }
}

// WithWriteTimeout bounds each write-back. Defaults to storage.DefaultDBTimeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// Draft is the in-progress food entry form. It is never persisted.
type Draft struct {
	Name string         `json:"name"`
	Kcal string         `json:"kcal"`
	Meal nutrition.Meal `json:"meal"`
}

// Session is the state of the active day.
type Session struct {
	store   storage.Store
	log     Logger
	catalog []nutrition.Suggestion
	timeout time.Duration

	inputs   nutrition.Inputs
	consumed float64
	foods    []nutrition.FoodLogEntry
	recent   []nutrition.RecentFood
	deck     *deck.Deck

	draft   Draft
	pending *nutrition.Prediction
}

// New loads the day from store. Missing or unreadable keys fall back to their
// defaults; New never fails because of stored data.
func New(ctx context.Context, store storage.Store, opts ...Option) *Session {
	s := &Session{
		store:   store,
		log:     nopLogger{},
		catalog: nutrition.DefaultCatalog,
		timeout: storage.DefaultDBTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	s.load(ctx)
	return s
}

func (s *Session) load(ctx context.Context) {
	def := nutrition.DefaultInputs()
	s.inputs = nutrition.Inputs{
		CalorieTarget: s.loadInt(ctx, storage.KeyCalorieTarget, def.CalorieTarget),
		ExerciseCals:  s.loadInt(ctx, storage.KeyExercise, def.ExerciseCals),
		StepsGoal:     s.loadInt(ctx, storage.KeyStepsGoal, def.StepsGoal),
		Steps:         s.loadInt(ctx, storage.KeySteps, def.Steps),
		WaterGoalMl:   s.loadInt(ctx, storage.KeyWaterGoal, def.WaterGoalMl),
		WaterMl:       s.loadInt(ctx, storage.KeyWater, def.WaterMl),
		Weight:        s.loadFloat(ctx, storage.KeyWeight, def.Weight),
		Macros:        s.loadMacroRatios(ctx, def.Macros),
		Micros:        s.loadMicroTargets(ctx, def.Micros),
	}
	s.consumed = s.loadFloat(ctx, storage.KeyConsumed, nutrition.DefaultConsumed)
	s.foods = s.loadFoods(ctx)
	s.recent = s.loadRecent(ctx)
	s.deck = deck.New(
		s.loadRecipes(ctx),
		s.loadIDs(ctx, storage.KeyFavorites),
		s.loadIDs(ctx, storage.KeySkipped),
		s.loadIDs(ctx, storage.KeyRejected),
	)
	s.deck.Seek(s.loadInt(ctx, storage.KeyRecipeIndex, 0))
	s.draft = Draft{Meal: nutrition.Breakfast}
	s.pending = nil
}

// persist writes v under key. Failures are logged and otherwise ignored: the
// in-memory state stays authoritative for the rest of the session.
func (s *Session) persist(key string, v interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := storage.Put(ctx, s.store, key, v); err != nil {
		s.log.Warnf("Failed to save %s: %v", key, err)
	}
}

// Reset removes every stored key and reloads the defaults.
func (s *Session) Reset(ctx context.Context) error {
	for _, k := range storage.AllKeys {
		if err := s.store.Remove(ctx, k); err != nil {
			return err
		}
	}
	s.load(ctx)
	s.log.Infof("Reset all stored state")
	return nil
}

// Inputs returns the raw inputs.
func (s *Session) Inputs() nutrition.Inputs { return s.inputs }

// Consumed returns the running consumed total.
func (s *Session) Consumed() float64 { return s.consumed }

// Foods returns a copy of the food log, newest first.
func (s *Session) Foods() []nutrition.FoodLogEntry {
	return append([]nutrition.FoodLogEntry{}, s.foods...)
}

// Recent returns a copy of the recent-foods memo, newest first.
func (s *Session) Recent() []nutrition.RecentFood {
	return append([]nutrition.RecentFood{}, s.recent...)
}

// Snapshot derives every display metric from the current state.
func (s *Session) Snapshot() nutrition.Snapshot {
	return nutrition.Compute(s.inputs, s.consumed, s.foods, s.catalog)
}

// Report renders the plain-text daily report.
func (s *Session) Report() string {
	snap := s.Snapshot()
	return nutrition.Report(nutrition.ReportInput{
		CalorieTarget: s.inputs.CalorieTarget,
		Consumed:      s.consumed,
		Exercise:      s.inputs.ExerciseCals,
		Net:           snap.Net,
		Grade:         snap.Grade,
		Projection:    snap.WeeklyProjection,
		Favorites:     s.deck.FavoriteIDs(),
	})
}

// Setters replace one raw input and write back only its own key.

func (s *Session) SetCalorieTarget(v int) {
	s.inputs.CalorieTarget = v
	s.persist(storage.KeyCalorieTarget, v)
}

func (s *Session) SetExercise(v int) {
	s.inputs.ExerciseCals = v
	s.persist(storage.KeyExercise, v)
}

// AddExercise adds a logged workout to the exercise total.
func (s *Session) AddExercise(kcal int) {
	s.SetExercise(s.inputs.ExerciseCals + kcal)
}

func (s *Session) SetSteps(v int) {
	s.inputs.Steps = v
	s.persist(storage.KeySteps, v)
}

func (s *Session) SetStepsGoal(v int) {
	s.inputs.StepsGoal = v
	s.persist(storage.KeyStepsGoal, v)
}

func (s *Session) SetWater(ml int) {
	s.inputs.WaterMl = ml
	s.persist(storage.KeyWater, ml)
}

// AdjustWater adds delta ml (negative to undo a glass), never going below 0.
func (s *Session) AdjustWater(delta int) {
	v := s.inputs.WaterMl + delta
	if v < 0 {
		v = 0
	}
	s.SetWater(v)
}

func (s *Session) SetWaterGoal(ml int) {
	s.inputs.WaterGoalMl = ml
	s.persist(storage.KeyWaterGoal, ml)
}

func (s *Session) SetWeight(v float64) {
	s.inputs.Weight = v
	s.persist(storage.KeyWeight, v)
}

func (s *Session) SetMacroRatios(r nutrition.MacroRatios) {
	s.inputs.Macros = r
	s.persist(storage.KeyMacroRatios, r)
}

func (s *Session) SetMicroTargets(m nutrition.MicroTargets) {
	s.inputs.Micros = m
	s.persist(storage.KeyMicroTargets, m)
}

// Draft returns the in-progress entry form.
func (s *Session) Draft() Draft { return s.draft }

// SetDraft replaces the in-progress entry form.
func (s *Session) SetDraft(d Draft) { s.draft = d }

// SubmitDraft quick-adds the draft. The draft is cleared on success.
func (s *Session) SubmitDraft() bool {
	return s.QuickAdd(s.draft.Name, s.draft.Kcal, s.draft.Meal)
}

// AddFood logs a food: it prepends the entry, bumps the consumed total by the
// same kcal and remembers the food in the recent memo. A blank name, or a kcal
// that would push the total past the float range, is a no-op and returns false.
func (s *Session) AddFood(name string, kcal float64, meal nutrition.Meal) bool {
	entry, ok := s.logFood(name, kcal, meal)
	if !ok {
		return false
	}
	s.remember(entry.Name, entry.Kcal)
	s.draft.Name, s.draft.Kcal = "", ""
	s.persist(storage.KeyRecent, s.recent)
	return true
}

// logFood appends to the log and consumed total without touching the memo.
func (s *Session) logFood(name string, kcal float64, meal nutrition.Meal) (nutrition.FoodLogEntry, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nutrition.FoodLogEntry{}, false
	}
	if total := s.consumed + kcal; math.IsNaN(total) || math.IsInf(total, 0) {
		s.log.Warnf("Refusing to log %s: %v kcal overflows the consumed total", name, kcal)
		return nutrition.FoodLogEntry{}, false
	}
	entry := nutrition.FoodLogEntry{ID: uuid.NewString(), Meal: meal, Name: name, Kcal: kcal}
	s.foods = append([]nutrition.FoodLogEntry{entry}, s.foods...)
	s.consumed += kcal
	s.persist(storage.KeyFoods, s.foods)
	s.persist(storage.KeyConsumed, s.consumed)
	s.log.Debugf("Logged %s (%s kcal) to %s", name, nutrition.FormatKcal(kcal), meal)
	return entry, true
}

func (s *Session) remember(name string, kcal float64) {
	row := nutrition.RecentFood{ID: nutrition.RecentID(name), Name: name, Kcal: kcal}
	s.recent = append([]nutrition.RecentFood{row}, s.recent...)
	if len(s.recent) > nutrition.MaxRecentFoods {
		s.recent = s.recent[:nutrition.MaxRecentFoods]
	}
}

// QuickAdd logs a food from free text. A blank kcal is guessed from the name
// length; anything else is parsed leniently (garbage reads as 0).
func (s *Session) QuickAdd(name, kcalText string, meal nutrition.Meal) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	var kcal float64
	if strings.TrimSpace(kcalText) == "" {
		kcal = nutrition.Clamp(float64(utf8.RuneCountInString(name)*quickAddKcalPerRune), quickAddMinKcal, quickAddMaxKcal)
	} else {
		kcal = nutrition.ParseNumber(kcalText)
	}
	return s.AddFood(name, kcal, meal)
}

// RepeatFood logs a food again without adding another memo row.
func (s *Session) RepeatFood(name string, kcal float64, meal nutrition.Meal) bool {
	_, ok := s.logFood(name, kcal, meal)
	return ok
}

// RepeatRecent repeats the memo row with the given id.
func (s *Session) RepeatRecent(id string, meal nutrition.Meal) bool {
	for _, r := range s.recent {
		if r.ID == id {
			return s.RepeatFood(r.Name, r.Kcal, meal)
		}
	}
	return false
}

// AddSuggestion logs a catalog suggestion as a snack.
func (s *Session) AddSuggestion(name string) bool {
	sug, ok := nutrition.FindSuggestion(s.catalog, name)
	if !ok {
		return false
	}
	return s.RepeatFood(sug.Name, sug.Kcal, nutrition.Snacks)
}

// AddBarcode looks up code and logs the product as a snack.
func (s *Session) AddBarcode(code string) nutrition.FoodLogEntry {
	p := nutrition.LookupBarcode(code)
	entry, _ := s.logFood(p.Name, p.Kcal, nutrition.Snacks)
	return entry
}

// ScanPhoto recognizes a meal photo and holds the guess until it is confirmed
// or cancelled. A new scan replaces any pending guess.
func (s *Session) ScanPhoto(filename string) nutrition.Prediction {
	p := nutrition.RecognizeImage(filename)
	s.pending = &p
	return p
}

// PendingPhoto returns the unconfirmed photo guess, if any.
func (s *Session) PendingPhoto() (nutrition.Prediction, bool) {
	if s.pending == nil {
		return nutrition.Prediction{}, false
	}
	return *s.pending, true
}

// ConfirmPhoto logs the pending guess to meal.
func (s *Session) ConfirmPhoto(meal nutrition.Meal) bool {
	if s.pending == nil {
		return false
	}
	p := *s.pending
	s.pending = nil
	return s.AddFood(p.Name, p.Kcal, meal)
}

// CancelPhoto drops the pending guess.
func (s *Session) CancelPhoto() { s.pending = nil }

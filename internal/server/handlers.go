package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
)

func abort(c *gin.Context, code int, format string, args ...interface{}) {
	c.AbortWithStatusJSON(code, gin.H{"error": fmt.Sprintf(format, args...)})
}

// readJSON returns the request body parsed with gjson. Loose parsing lets
// clients send numbers either as JSON numbers or as strings.
func readJSON(c *gin.Context) (gjson.Result, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !gjson.ValidBytes(body) {
		abort(c, http.StatusBadRequest, "invalid JSON body")
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(body), true
}

// mealParam reads a meal tag. Empty means breakfast, like the entry form.
func mealParam(c *gin.Context, raw string) (nutrition.Meal, bool) {
	if raw == "" {
		return nutrition.Breakfast, true
	}
	m, ok := nutrition.ParseMeal(raw)
	if !ok {
		abort(c, http.StatusBadRequest, "unknown meal %q", raw)
	}
	return m, ok
}

func (s *Server) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Snapshot())
}

type mealTotals struct {
	Entries []nutrition.FoodLogEntry `json:"entries"`
	Kcal    float64                  `json:"kcal"`
}

func (s *Server) handleMeals(c *gin.Context) {
	out := make(map[nutrition.Meal]mealTotals, len(nutrition.Meals))
	for meal, entries := range nutrition.BucketMeals(s.sess.Foods()) {
		out[meal] = mealTotals{Entries: entries, Kcal: nutrition.SumKcal(entries)}
	}
	c.JSON(http.StatusOK, out)
}

// handleInputs applies a partial update. Only the fields present in the body
// are changed and written back.
func (s *Server) handleInputs(c *gin.Context) {
	body, ok := readJSON(c)
	if !ok {
		return
	}
	ints := []struct {
		field string
		set   func(int)
	}{
		{"calorieTarget", s.sess.SetCalorieTarget},
		{"exerciseCals", s.sess.SetExercise},
		{"steps", s.sess.SetSteps},
		{"stepsGoal", s.sess.SetStepsGoal},
		{"waterMl", s.sess.SetWater},
		{"waterGoalMl", s.sess.SetWaterGoal},
	}
	for _, f := range ints {
		if v := body.Get(f.field); v.Exists() {
			f.set(nutrition.ToInt(nutrition.ParseNumber(v.String())))
		}
	}
	if v := body.Get("weight"); v.Exists() {
		s.sess.SetWeight(nutrition.ParseNumber(v.String()))
	}

	in := s.sess.Inputs()
	if m := body.Get("macroRatios"); m.IsObject() {
		r := in.Macros
		setIfPresent(m, "carbs", &r.Carbs)
		setIfPresent(m, "protein", &r.Protein)
		setIfPresent(m, "fat", &r.Fat)
		s.sess.SetMacroRatios(r)
	}
	if m := body.Get("microTargets"); m.IsObject() {
		t := in.Micros
		setIfPresent(m, "fiber_g", &t.FiberG)
		setIfPresent(m, "vitaminC_mg", &t.VitaminCMg)
		setIfPresent(m, "iron_mg", &t.IronMg)
		s.sess.SetMicroTargets(t)
	}
	c.JSON(http.StatusOK, s.sess.Snapshot())
}

func setIfPresent(obj gjson.Result, field string, dst *float64) {
	if v := obj.Get(field); v.Exists() {
		*dst = nutrition.ParseNumber(v.String())
	}
}

func (s *Server) handleWater(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	s.sess.AdjustWater(req.Delta)
	c.JSON(http.StatusOK, s.sess.Snapshot())
}

func (s *Server) handleExercise(c *gin.Context) {
	var req struct {
		Kcal int `json:"kcal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	s.sess.AddExercise(req.Kcal)
	c.JSON(http.StatusOK, s.sess.Snapshot())
}

func (s *Server) handleListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Foods())
}

func (s *Server) handleRecent(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Recent())
}

// handleAddFood quick-adds a food. A missing or blank kcal is guessed from
// the name.
func (s *Server) handleAddFood(c *gin.Context) {
	body, ok := readJSON(c)
	if !ok {
		return
	}
	meal, ok := mealParam(c, body.Get("meal").String())
	if !ok {
		return
	}
	name := body.Get("name").String()
	if strings.TrimSpace(name) == "" {
		abort(c, http.StatusBadRequest, "name is required")
		return
	}
	if !s.sess.QuickAdd(name, body.Get("kcal").String(), meal) {
		abort(c, http.StatusBadRequest, "kcal is out of range")
		return
	}
	c.JSON(http.StatusCreated, s.sess.Foods()[0])
}

func (s *Server) handleRepeatFood(c *gin.Context) {
	var req struct {
		ID   string `json:"id" binding:"required"`
		Meal string `json:"meal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	meal, ok := mealParam(c, req.Meal)
	if !ok {
		return
	}
	if !s.sess.RepeatRecent(req.ID, meal) {
		abort(c, http.StatusNotFound, "no recent food %q", req.ID)
		return
	}
	c.JSON(http.StatusCreated, s.sess.Foods()[0])
}

func (s *Server) handleDeck(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Deck())
}

func (s *Server) handleFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.FavoriteRecipes())
}

func (s *Server) handleDeckAction(c *gin.Context) {
	actions := map[string]func() bool{
		"like":   s.sess.LikeRecipe,
		"skip":   s.sess.SkipRecipe,
		"super":  s.sess.SuperLikeRecipe,
		"reject": s.sess.RejectRecipe,
		"undo":   s.sess.UndoRecipe,
	}
	action, ok := actions[c.Param("action")]
	if !ok {
		abort(c, http.StatusBadRequest, "unknown deck action %q", c.Param("action"))
		return
	}
	applied := action()
	c.JSON(http.StatusOK, gin.H{"applied": applied, "deck": s.sess.Deck()})
}

func (s *Server) handleRecommendations(c *gin.Context) {
	snap := s.sess.Snapshot()
	c.JSON(http.StatusOK, gin.H{"remaining": snap.Remaining, "items": snap.Recommendations})
}

func (s *Server) handleAddRecommendation(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	if !s.sess.AddSuggestion(req.Name) {
		abort(c, http.StatusNotFound, "no suggestion named %q", req.Name)
		return
	}
	c.JSON(http.StatusCreated, s.sess.Foods()[0])
}

func (s *Server) handleScanPhoto(c *gin.Context) {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	c.JSON(http.StatusOK, s.sess.ScanPhoto(req.Filename))
}

func (s *Server) handleConfirmPhoto(c *gin.Context) {
	var req struct {
		Meal string `json:"meal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	meal, ok := mealParam(c, req.Meal)
	if !ok {
		return
	}
	if !s.sess.ConfirmPhoto(meal) {
		abort(c, http.StatusConflict, "no photo is waiting for confirmation")
		return
	}
	c.JSON(http.StatusCreated, s.sess.Foods()[0])
}

func (s *Server) handleCancelPhoto(c *gin.Context) {
	s.sess.CancelPhoto()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleBarcode(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "%v", err)
		return
	}
	c.JSON(http.StatusCreated, s.sess.AddBarcode(req.Code))
}

func (s *Server) handleReport(c *gin.Context) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nutrition.ReportFileName))
	c.String(http.StatusOK, s.sess.Report())
}

func (s *Server) handleWeight(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.SampleWeightSeries())
}

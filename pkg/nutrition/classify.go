package nutrition

import (
	"math"
	"strings"
)

// Prediction is a classifier guess for a food: name, energy and micros.
type Prediction struct {
	Name string  `json:"name"`
	Kcal float64 `json:"kcal"`
	Micros
}

// matcher reports whether a lowercased name or filename matches a rule.
type matcher func(lower string) bool

func containsAny(words ...string) matcher {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

type microRule struct {
	match  matcher
	micros Micros
}

// microRules back EstimateMicros. Swap the table for a real lookup later.
var microRules = []microRule{
	{containsAny("salad"), Micros{FiberG: 5, VitaminCMg: 20, IronMg: 1}},
	{containsAny("smoothie"), Micros{FiberG: 4, VitaminCMg: 60, IronMg: 0.5}},
	{containsAny("bowl", "grain"), Micros{FiberG: 7, VitaminCMg: 15, IronMg: 2}},
	{containsAny("yogurt"), Micros{FiberG: 0, VitaminCMg: 2, IronMg: 0.1}},
	{containsAny("salmon"), Micros{FiberG: 0, VitaminCMg: 0, IronMg: 0.5}},
}

// defaultEstimateKcal is used by the generic fallback when kcal is unknown.
const defaultEstimateKcal = 400

// EstimateMicros guesses micronutrients for a food by keyword, falling back to
// amounts that scale with kcal.
func EstimateMicros(name string, kcal float64) Micros {
	lower := strings.ToLower(name)
	for _, r := range microRules {
		if r.match(lower) {
			return r.micros
		}
	}
	k := kcal
	if k == 0 || math.IsNaN(k) {
		k = defaultEstimateKcal
	}
	return Micros{
		FiberG:     roundHalfUp(k * 0.005),
		VitaminCMg: roundHalfUp(k * 0.1),
		IronMg:     roundHalfUp(k*0.002*10) / 10,
	}
}

type imageRule struct {
	match matcher
	name  string
	kcal  float64
}

var imageRules = []imageRule{
	{containsAny("salad"), "Chicken Salad", 420},
	{containsAny("smoothie"), "Green Smoothie", 280},
	{containsAny("bowl"), "Grain Bowl", 520},
}

var genericMeal = imageRule{name: "Meal", kcal: 400}

// RecognizeImage guesses the meal in a photo from its filename.
func RecognizeImage(filename string) Prediction {
	lower := strings.ToLower(filename)
	hit := genericMeal
	for _, r := range imageRules {
		if r.match(lower) {
			hit = r
			break
		}
	}
	return Prediction{Name: hit.name, Kcal: hit.kcal, Micros: EstimateMicros(hit.name, hit.kcal)}
}

// Barcode lookup results are fixed until a product database is wired in.
const (
	barcodeKcal        = 180
	defaultBarcodeCode = "123456"
)

// LookupBarcode resolves an entered barcode to a product guess.
func LookupBarcode(code string) Prediction {
	code = strings.TrimSpace(code)
	if code == "" {
		code = defaultBarcodeCode
	}
	name := "Item " + code
	return Prediction{Name: name, Kcal: barcodeKcal, Micros: EstimateMicros(name, barcodeKcal)}
}

// EstimateDayMicros sums the micronutrient estimates of every log entry.
func EstimateDayMicros(log []FoodLogEntry) Micros {
	var total Micros
	for _, e := range log {
		total = total.add(EstimateMicros(e.Name, e.Kcal))
	}
	total.IronMg = roundHalfUp(total.IronMg*10) / 10
	return total
}

package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMicros(t *testing.T) {
	tests := []struct {
		name string
		food string
		kcal float64
		want Micros
	}{
		{"salad keyword", "Caesar Salad", 300, Micros{FiberG: 5, VitaminCMg: 20, IronMg: 1}},
		{"smoothie keyword", "berry SMOOTHIE", 0, Micros{FiberG: 4, VitaminCMg: 60, IronMg: 0.5}},
		{"grain keyword", "Whole grain toast", 150, Micros{FiberG: 7, VitaminCMg: 15, IronMg: 2}},
		{"yogurt keyword", "Greek Yogurt", 120, Micros{FiberG: 0, VitaminCMg: 2, IronMg: 0.1}},
		{"salmon keyword", "Grilled Salmon", 450, Micros{FiberG: 0, VitaminCMg: 0, IronMg: 0.5}},
		{"generic scales with kcal", "Avocado Toast", 250, Micros{FiberG: 1, VitaminCMg: 25, IronMg: 0.5}},
		{"generic without kcal", "Mystery", 0, Micros{FiberG: 2, VitaminCMg: 40, IronMg: 0.8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateMicros(tc.food, tc.kcal)
			assert.InDelta(t, tc.want.FiberG, got.FiberG, 1e-9)
			assert.InDelta(t, tc.want.VitaminCMg, got.VitaminCMg, 1e-9)
			assert.InDelta(t, tc.want.IronMg, got.IronMg, 1e-9)
		})
	}
}

func TestRecognizeImage(t *testing.T) {
	tests := []struct {
		file string
		name string
		kcal float64
	}{
		{"IMG_salad_lunch.jpg", "Chicken Salad", 420},
		{"Smoothie.PNG", "Green Smoothie", 280},
		{"smoothie_bowl.jpg", "Green Smoothie", 280},
		{"poke-bowl.heic", "Grain Bowl", 520},
		{"DSC0001.jpg", "Meal", 400},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			got := RecognizeImage(tc.file)
			assert.Equal(t, tc.name, got.Name)
			assert.Equal(t, tc.kcal, got.Kcal)
		})
	}

	assert.Equal(t, EstimateMicros("Grain Bowl", 520), RecognizeImage("bowl.jpg").Micros)
}

func TestLookupBarcode(t *testing.T) {
	got := LookupBarcode(" 0123 ")
	assert.Equal(t, "Item 0123", got.Name)
	assert.Equal(t, 180.0, got.Kcal)

	assert.Equal(t, "Item 123456", LookupBarcode("").Name)
}

func TestEstimateDayMicros(t *testing.T) {
	log := []FoodLogEntry{
		{Meal: Lunch, Name: "Chicken Salad", Kcal: 420},
		{Meal: Snacks, Name: "Green Smoothie", Kcal: 280},
	}
	got := EstimateDayMicros(log)
	assert.InDelta(t, 9.0, got.FiberG, 1e-9)
	assert.InDelta(t, 80.0, got.VitaminCMg, 1e-9)
	assert.InDelta(t, 1.5, got.IronMg, 1e-9)

	assert.Equal(t, Micros{}, EstimateDayMicros(nil))
}

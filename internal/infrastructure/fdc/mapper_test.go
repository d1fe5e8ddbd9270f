package fdc

import (
	"math"
	"testing"

	"github.com/macrotally/backend/internal/domain"
)

func TestExtractPer100g(t *testing.T) {
	tests := []struct {
		name   string
		detail *domain.FoodDetail
		want   domain.NutrientProfile
	}{
		{
			name: "complete profile in canonical units",
			detail: &domain.FoodDetail{
				Description: "Egg, whole, raw",
				Nutrients: []domain.NutrientEntry{
					{NutrientID: NutrientIDEnergy, UnitName: "kcal", Amount: 155},
					{NutrientID: NutrientIDProtein, UnitName: "g", Amount: 13},
					{NutrientID: NutrientIDTotalFat, UnitName: "g", Amount: 11},
					{NutrientID: NutrientIDCarbohydrate, UnitName: "g", Amount: 1.1},
					{NutrientID: NutrientIDFiber, UnitName: "g", Amount: 0},
					{NutrientID: NutrientIDSodium, UnitName: "mg", Amount: 124},
					{NutrientID: NutrientIDPotassium, UnitName: "mg", Amount: 126},
					{NutrientID: NutrientIDMagnesium, UnitName: "mg", Amount: 12},
				},
			},
			want: domain.NutrientProfile{
				Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1,
				Sodium: 124, Potassium: 126, Magnesium: 12,
			},
		},
		{
			name: "energy reported in kilojoules",
			detail: &domain.FoodDetail{
				Nutrients: []domain.NutrientEntry{
					{NutrientID: NutrientIDEnergy, UnitName: "kJ", Amount: 418.4},
				},
			},
			want: domain.NutrientProfile{Calories: 100},
		},
		{
			name: "minerals reported in grams normalize to milligrams",
			detail: &domain.FoodDetail{
				Nutrients: []domain.NutrientEntry{
					{NutrientID: NutrientIDSodium, UnitName: "g", Amount: 0.124},
					{NutrientID: NutrientIDPotassium, UnitName: "G", Amount: 0.126},
					{NutrientID: NutrientIDMagnesium, UnitName: "mg", Amount: 12},
				},
			},
			want: domain.NutrientProfile{Sodium: 124, Potassium: 126, Magnesium: 12},
		},
		{
			name: "untracked nutrient ids are ignored",
			detail: &domain.FoodDetail{
				Nutrients: []domain.NutrientEntry{
					{NutrientID: 1057, UnitName: "mg", Amount: 40}, // caffeine
					{NutrientID: NutrientIDProtein, UnitName: "g", Amount: 2},
				},
			},
			want: domain.NutrientProfile{Protein: 2},
		},
		{
			name: "non-finite amounts are skipped",
			detail: &domain.FoodDetail{
				Nutrients: []domain.NutrientEntry{
					{NutrientID: NutrientIDProtein, UnitName: "g", Amount: math.NaN()},
					{NutrientID: NutrientIDTotalFat, UnitName: "g", Amount: math.Inf(1)},
					{NutrientID: NutrientIDCarbohydrate, UnitName: "g", Amount: 5},
				},
			},
			want: domain.NutrientProfile{Carbs: 5},
		},
		{
			name:   "empty detail yields all zeros",
			detail: &domain.FoodDetail{},
			want:   domain.NutrientProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPer100g(tt.detail)
			if !profilesClose(got, tt.want) {
				t.Errorf("ExtractPer100g() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func profilesClose(a, b domain.NutrientProfile) bool {
	const tol = 1e-9
	approx := func(x, y float64) bool { return math.Abs(x-y) <= tol }
	return approx(a.Calories, b.Calories) &&
		approx(a.Protein, b.Protein) &&
		approx(a.Fat, b.Fat) &&
		approx(a.Carbs, b.Carbs) &&
		approx(a.Fiber, b.Fiber) &&
		approx(a.Sodium, b.Sodium) &&
		approx(a.Potassium, b.Potassium) &&
		approx(a.Magnesium, b.Magnesium)
}

func TestNormalizeNutrients(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	t.Run("flat shape", func(t *testing.T) {
		entries := normalizeNutrients([]rawNutrient{
			{NutrientID: 1003, UnitName: "g", Value: value(13)},
		})
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].NutrientID != 1003 || entries[0].UnitName != "g" || entries[0].Amount != 13 {
			t.Errorf("entry = %+v", entries[0])
		}
	})

	t.Run("nested shape", func(t *testing.T) {
		entries := normalizeNutrients([]rawNutrient{
			{
				Amount: value(124),
				Nutrient: &struct {
					ID       int    `json:"id"`
					UnitName string `json:"unitName"`
				}{ID: 1093, UnitName: "mg"},
			},
		})
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].NutrientID != 1093 || entries[0].UnitName != "mg" || entries[0].Amount != 124 {
			t.Errorf("entry = %+v", entries[0])
		}
	})

	t.Run("amount preferred over value when both present", func(t *testing.T) {
		entries := normalizeNutrients([]rawNutrient{
			{NutrientID: 1008, Amount: value(155), Value: value(999)},
		})
		if entries[0].Amount != 155 {
			t.Errorf("Amount = %v, want 155", entries[0].Amount)
		}
	})

	t.Run("rows with no id or no amount are dropped", func(t *testing.T) {
		entries := normalizeNutrients([]rawNutrient{
			{UnitName: "g", Value: value(10)}, // no id anywhere
			{NutrientID: 1003},                // no amount
		})
		if len(entries) != 0 {
			t.Errorf("got %d entries, want 0: %+v", len(entries), entries)
		}
	})
}

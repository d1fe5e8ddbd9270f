package usecase

import (
	"math"

	"github.com/macrotally/backend/internal/domain"
)

// Scale converts a per-100g profile to the actual consumed mass. Rounding is
// applied exactly once, here at the end; intermediate math stays unrounded so
// rounding error never compounds.
func Scale(per100 domain.NutrientProfile, grams float64) domain.NutrientProfile {
	factor := grams / 100
	return RoundProfile(domain.NutrientProfile{
		Calories:  per100.Calories * factor,
		Protein:   per100.Protein * factor,
		Fat:       per100.Fat * factor,
		Carbs:     per100.Carbs * factor,
		Fiber:     per100.Fiber * factor,
		Sodium:    per100.Sodium * factor,
		Potassium: per100.Potassium * factor,
		Magnesium: per100.Magnesium * factor,
	})
}

// RoundProfile applies the display precision rules: calories and the
// milligram minerals round to the nearest integer, the gram macros to one
// decimal place.
func RoundProfile(p domain.NutrientProfile) domain.NutrientProfile {
	return domain.NutrientProfile{
		Calories:  math.Round(p.Calories),
		Protein:   roundTenth(p.Protein),
		Fat:       roundTenth(p.Fat),
		Carbs:     roundTenth(p.Carbs),
		Fiber:     roundTenth(p.Fiber),
		Sodium:    math.Round(p.Sodium),
		Potassium: math.Round(p.Potassium),
		Magnesium: math.Round(p.Magnesium),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

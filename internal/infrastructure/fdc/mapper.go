package fdc

import (
	"math"
	"strings"

	"github.com/macrotally/backend/internal/domain"
)

// FDC nutrient IDs for the eight tracked nutrients. Matching is always by
// this stable numeric identifier, never by free-text nutrient name, which
// varies by locale and casing across provider versions.
const (
	NutrientIDEnergy       = 1008 // Energy (kcal)
	NutrientIDProtein      = 1003 // Protein (g)
	NutrientIDTotalFat     = 1004 // Total fat (g)
	NutrientIDCarbohydrate = 1005 // Carbohydrate, by difference (g)
	NutrientIDFiber        = 1079 // Fiber, total dietary (g)
	NutrientIDSodium       = 1093 // Sodium (mg)
	NutrientIDPotassium    = 1092 // Potassium (mg)
	NutrientIDMagnesium    = 1090 // Magnesium (mg)
)

// kcalPerKilojoule converts kJ-reported energy to kilocalories.
const kcalPerKilojoule = 4.184

// rawNutrient tolerates both shapes the detail and search payloads use for a
// nutrient row: flat (nutrientId/unitName/value) and nested
// (nutrient.id/nutrient.unitName/amount). Every field is optional.
type rawNutrient struct {
	NutrientID int      `json:"nutrientId"`
	UnitName   string   `json:"unitName"`
	Value      *float64 `json:"value"`
	Amount     *float64 `json:"amount"`
	Nutrient   *struct {
		ID       int    `json:"id"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
}

// normalizeNutrients flattens raw nutrient rows of either shape into
// domain.NutrientEntry. Rows with no identifier or no amount are dropped;
// this function never fails.
func normalizeNutrients(raw []rawNutrient) []domain.NutrientEntry {
	entries := make([]domain.NutrientEntry, 0, len(raw))
	for _, r := range raw {
		id := r.NutrientID
		unit := r.UnitName
		if r.Nutrient != nil {
			if id == 0 {
				id = r.Nutrient.ID
			}
			if unit == "" {
				unit = r.Nutrient.UnitName
			}
		}

		var amount *float64
		switch {
		case r.Amount != nil:
			amount = r.Amount
		case r.Value != nil:
			amount = r.Value
		}

		if id == 0 || amount == nil {
			continue
		}

		entries = append(entries, domain.NutrientEntry{
			NutrientID: id,
			UnitName:   unit,
			Amount:     *amount,
		})
	}
	return entries
}

// ExtractPer100g pulls the eight tracked nutrients out of a detail record,
// normalized to their canonical units. Nutrients absent from the record stay
// at 0; absence is a zero contribution, never an error. Entries with a
// non-finite amount are skipped, unknown nutrient IDs ignored.
func ExtractPer100g(detail *domain.FoodDetail) domain.NutrientProfile {
	var profile domain.NutrientProfile

	for _, entry := range detail.Nutrients {
		if math.IsNaN(entry.Amount) || math.IsInf(entry.Amount, 0) {
			continue
		}

		unit := strings.ToLower(strings.TrimSpace(entry.UnitName))
		switch entry.NutrientID {
		case NutrientIDEnergy:
			profile.Calories = kilocalories(entry.Amount, unit)
		case NutrientIDProtein:
			profile.Protein = entry.Amount
		case NutrientIDTotalFat:
			profile.Fat = entry.Amount
		case NutrientIDCarbohydrate:
			profile.Carbs = entry.Amount
		case NutrientIDFiber:
			profile.Fiber = entry.Amount
		case NutrientIDSodium:
			profile.Sodium = milligrams(entry.Amount, unit)
		case NutrientIDPotassium:
			profile.Potassium = milligrams(entry.Amount, unit)
		case NutrientIDMagnesium:
			profile.Magnesium = milligrams(entry.Amount, unit)
		}
	}

	return profile
}

// kilocalories normalizes an energy amount to kcal.
func kilocalories(v float64, unit string) float64 {
	if unit == "kj" {
		return v / kcalPerKilojoule
	}
	return v
}

// milligrams normalizes a mineral amount to mg. Some provider variants
// report minerals in grams.
func milligrams(v float64, unit string) float64 {
	if unit == "g" {
		return v * 1000
	}
	return v
}

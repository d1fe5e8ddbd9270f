package usecase

import (
	"math"
	"strings"
)

// gramsPerUnit maps normalized mass-unit spellings to grams per unit.
// Volume and count units are deliberately absent: they have no deterministic
// mass conversion and fall through to the estimator.
var gramsPerUnit = map[string]float64{
	"g":          1,
	"gram":       1,
	"grams":      1,
	"gm":         1,
	"kg":         1000,
	"kilogram":   1000,
	"kilograms":  1000,
	"oz":         28.349523125,
	"ounce":      28.349523125,
	"ounces":     28.349523125,
	"lb":         453.59237,
	"lbs":        453.59237,
	"pound":      453.59237,
	"pounds":     453.59237,
	"mg":         0.001,
	"milligram":  0.001,
	"milligrams": 0.001,
}

// ToGrams converts a (quantity, unit) pair to grams via table lookup on the
// lowercased, trimmed unit string. Returns 0 when no deterministic conversion
// exists or the quantity is non-positive/non-finite; 0 is the sentinel for
// "could not convert", never a valid mass. Never returns an error.
func ToGrams(quantity float64, unit string) float64 {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0
	}
	factor, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0
	}
	return quantity * factor
}

// IsMassUnit reports whether the unit converts deterministically to grams.
func IsMassUnit(unit string) bool {
	_, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	return ok
}

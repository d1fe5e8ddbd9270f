package usecase

import (
	"strings"

	"github.com/macrotally/backend/internal/domain"
)

// Per-heuristic gram weights for the mass estimator.
const (
	eggGrams        = 50.0  // one large egg
	tablespoonGrams = 15.0  // one level tablespoon
	leafyCupGrams   = 30.0  // one cup of leafy greens, volumetrically light
	genericCupGrams = 245.0 // one cup, generic liquid/solid density
	fallbackGrams   = 100.0 // flat default when nothing matches
)

// EstimateGrams produces a best-guess mass for an item whose unit could not
// be converted and that carries no explicit gram amount. Heuristics are
// evaluated in priority order against the lowercased unit+name+query text.
// The flat 100g fallback is a known crude approximation, not a bug; it is
// the single largest source of estimation error. Always returns a positive
// number.
func EstimateGrams(item domain.ParsedItem) float64 {
	text := strings.ToLower(item.Unit + " " + item.Name + " " + item.Query)
	count := item.Count()

	switch {
	case strings.Contains(text, "egg"):
		return eggGrams * count
	case strings.Contains(text, "tbsp"), strings.Contains(text, "tablespoon"):
		return tablespoonGrams * count
	case strings.Contains(text, "cup"):
		if strings.Contains(text, "spinach") {
			return leafyCupGrams * count
		}
		return genericCupGrams * count
	}

	// Count is deliberately ignored here: "2 servings of stew" is no better
	// quantified than one.
	return fallbackGrams
}

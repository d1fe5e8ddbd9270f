package usecase

import (
	"strings"

	"github.com/macrotally/backend/internal/domain"
)

// Data-type scoring bonuses for candidate selection. Curated reference
// entries (Foundation, SR Legacy, Survey/FNDDS) rank above branded entries,
// which are noisier and product-specific, but branded still beats nothing so
// packaged foods resolve.
const (
	dataTypeFoundationBonus = 6.0
	dataTypeSRBonus         = 5.0
	dataTypeSurveyBonus     = 4.0
	dataTypeBrandedBonus    = 2.0
	nutrientDataBonus       = 1.0
)

// PickBest scores each search hit and returns the highest-scoring one, or
// nil for an empty list. Ties keep the earliest candidate, i.e. the search
// service's own ranking.
func PickBest(candidates []domain.FoodCandidate) *domain.FoodCandidate {
	if len(candidates) == 0 {
		return nil
	}

	bestIdx := 0
	bestScore := scoreCandidate(candidates[0])
	for i := 1; i < len(candidates); i++ {
		if score := scoreCandidate(candidates[i]); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	return &candidates[bestIdx]
}

// scoreCandidate computes the additive data-type score for one search hit.
func scoreCandidate(c domain.FoodCandidate) float64 {
	tag := strings.ToLower(c.DataType)

	score := 0.0
	if strings.Contains(tag, "foundation") {
		score += dataTypeFoundationBonus
	}
	if strings.Contains(tag, "sr") {
		score += dataTypeSRBonus
	}
	if strings.Contains(tag, "survey") {
		score += dataTypeSurveyBonus
	}
	if strings.Contains(tag, "branded") {
		score += dataTypeBrandedBonus
	}
	if c.HasNutrientData {
		score += nutrientDataBonus
	}

	return score
}

package http

import (
	"fmt"
	"math"
	"strings"

	"github.com/macrotally/backend/internal/domain"
)

// Sanitation clamps for incoming parsed items. The upstream extractor is
// supposed to have applied these already; the boundary re-applies them so a
// malformed payload cannot log a 10kg egg.
const (
	maxQuantity = 50
	maxGrams    = 2000
	maxTextLen  = 120
)

// rawItem is one item as posted by the text-understanding collaborator.
// Numeric fields are pointers so absence is distinguishable from zero.
type rawItem struct {
	Name          string   `json:"name"`
	Query         string   `json:"query"`
	Quantity      *float64 `json:"quantity"`
	Unit          string   `json:"unit"`
	ExplicitGrams *float64 `json:"explicitGrams"`
}

// normalizeItems maps raw posted items to domain.ParsedItem, applying the
// sanitation clamps. An item with no usable search phrase fails the batch.
func normalizeItems(raw []rawItem) ([]domain.ParsedItem, error) {
	items := make([]domain.ParsedItem, 0, len(raw))
	for i, r := range raw {
		item, err := normalizeItem(r)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func normalizeItem(r rawItem) (domain.ParsedItem, error) {
	query := clipText(r.Query)
	if query == "" {
		query = clipText(r.Name)
	}
	if query == "" {
		return domain.ParsedItem{}, fmt.Errorf("%w: empty query", domain.ErrInvalidItem)
	}

	name := clipText(r.Name)
	if name == "" {
		name = query
	}

	return domain.ParsedItem{
		Name:          name,
		Query:         query,
		Quantity:      clampNumber(r.Quantity, maxQuantity),
		Unit:          clipText(r.Unit),
		ExplicitGrams: clampNumber(r.ExplicitGrams, maxGrams),
	}, nil
}

// clampNumber treats non-finite or non-positive values as absent and caps
// the rest.
func clampNumber(v *float64, max float64) *float64 {
	if v == nil || *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	n := *v
	if n > max {
		n = max
	}
	return &n
}

func clipText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxTextLen {
		s = s[:maxTextLen]
	}
	return s
}

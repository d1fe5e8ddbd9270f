package http

import (
	"errors"
	"math"
	"testing"

	"github.com/macrotally/backend/internal/domain"
)

func num(v float64) *float64 { return &v }

func TestNormalizeItem(t *testing.T) {
	t.Run("passes a well-formed item through", func(t *testing.T) {
		item, err := normalizeItem(rawItem{
			Name:     "egg",
			Query:    "egg",
			Quantity: num(3),
			Unit:     "egg",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "egg" || item.Query != "egg" || *item.Quantity != 3 {
			t.Errorf("item = %+v", item)
		}
	})

	t.Run("falls back to name when query is empty", func(t *testing.T) {
		item, err := normalizeItem(rawItem{Name: "spinach"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Query != "spinach" {
			t.Errorf("Query = %q, want spinach", item.Query)
		}
	})

	t.Run("rejects empty item", func(t *testing.T) {
		_, err := normalizeItem(rawItem{})
		if !errors.Is(err, domain.ErrInvalidItem) {
			t.Errorf("error = %v, want ErrInvalidItem", err)
		}
	})

	t.Run("clamps oversized quantity and grams", func(t *testing.T) {
		item, err := normalizeItem(rawItem{
			Query:         "rice",
			Quantity:      num(900),
			ExplicitGrams: num(90000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *item.Quantity != maxQuantity {
			t.Errorf("Quantity = %v, want %v", *item.Quantity, float64(maxQuantity))
		}
		if *item.ExplicitGrams != maxGrams {
			t.Errorf("ExplicitGrams = %v, want %v", *item.ExplicitGrams, float64(maxGrams))
		}
	})

	t.Run("treats non-finite and non-positive numbers as absent", func(t *testing.T) {
		item, err := normalizeItem(rawItem{
			Query:         "rice",
			Quantity:      num(math.NaN()),
			ExplicitGrams: num(-20),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != nil {
			t.Errorf("Quantity = %v, want nil", *item.Quantity)
		}
		if item.ExplicitGrams != nil {
			t.Errorf("ExplicitGrams = %v, want nil", *item.ExplicitGrams)
		}
	})

	t.Run("clips oversized text", func(t *testing.T) {
		long := make([]byte, 500)
		for i := range long {
			long[i] = 'a'
		}
		item, err := normalizeItem(rawItem{Query: string(long)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(item.Query) != maxTextLen {
			t.Errorf("len(Query) = %d, want %d", len(item.Query), maxTextLen)
		}
	})
}

func TestNormalizeItems(t *testing.T) {
	t.Run("reports the failing item index", func(t *testing.T) {
		_, err := normalizeItems([]rawItem{
			{Query: "egg"},
			{},
		})
		if err == nil {
			t.Fatal("error = nil, want item 1 failure")
		}
		if !errors.Is(err, domain.ErrInvalidItem) {
			t.Errorf("error = %v, want ErrInvalidItem", err)
		}
	})

	t.Run("keeps input order", func(t *testing.T) {
		items, err := normalizeItems([]rawItem{
			{Query: "egg"},
			{Query: "spinach"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].Query != "egg" || items[1].Query != "spinach" {
			t.Errorf("items = %+v", items)
		}
	})
}

package domain

import (
	"context"
	"time"
)

// FoodLookup defines the interface to the external nutrition lookup service.
type FoodLookup interface {
	SearchFoods(ctx context.Context, query string) ([]FoodCandidate, error)
	GetFoodDetail(ctx context.Context, fdcID int) (*FoodDetail, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CustomFoodStore holds user-defined foods that bypass the external lookup.
type CustomFoodStore interface {
	// Match returns the first custom food whose name matches the given item
	// text by case-insensitive substring in either direction, or nil.
	Match(text string) *CustomFood
	Add(food CustomFood)
}

// DayLog owns DayRecords; records are mutated only by appending or removing
// a resolved item.
type DayLog interface {
	Append(date string, items []ResolvedItem) (*DayRecord, error)
	Get(date string) (*DayRecord, error)
	Remove(date, itemID string) error
}

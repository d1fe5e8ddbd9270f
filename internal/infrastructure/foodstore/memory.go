package foodstore

import (
	"strings"
	"sync"

	"github.com/macrotally/backend/internal/domain"
)

// MemoryStore holds user-defined custom foods in memory. Matching is a
// case-insensitive substring check in either direction, so "my protein shake"
// matches a custom food named "protein shake" and vice versa.
type MemoryStore struct {
	foods []domain.CustomFood
	mutex sync.RWMutex
}

// NewMemoryStore creates a store seeded with the given foods.
func NewMemoryStore(seed []domain.CustomFood) *MemoryStore {
	store := &MemoryStore{}
	for _, food := range seed {
		if strings.TrimSpace(food.Name) != "" {
			store.foods = append(store.foods, food)
		}
	}
	return store
}

// Add registers a custom food.
func (s *MemoryStore) Add(food domain.CustomFood) {
	if strings.TrimSpace(food.Name) == "" {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.foods = append(s.foods, food)
}

// Match returns the first custom food whose name matches the given item text,
// or nil when none does.
func (s *MemoryStore) Match(text string) *domain.CustomFood {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for i := range s.foods {
		name := strings.ToLower(s.foods[i].Name)
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			food := s.foods[i]
			return &food
		}
	}

	return nil
}

package daylog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/macrotally/backend/internal/domain"
)

// MemoryLog is a thread-safe in-memory day log. A day's record is created on
// the first item logged for its date and mutated only by appending or
// removing items. Accessors return copies so callers cannot mutate a record
// in place.
type MemoryLog struct {
	days  map[string]*domain.DayRecord
	mutex sync.RWMutex
}

// NewMemoryLog creates an empty day log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		days: make(map[string]*domain.DayRecord),
	}
}

// Append adds resolved items to the given date's record, creating the record
// if needed, and returns a copy of the updated record. Each item is assigned
// an ID so it can be removed later.
func (l *MemoryLog) Append(date string, items []domain.ResolvedItem) (*domain.DayRecord, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	record, exists := l.days[date]
	if !exists {
		record = &domain.DayRecord{Date: date}
		l.days[date] = record
	}

	for _, item := range items {
		item.ID = uuid.NewString()
		record.Items = append(record.Items, item)
	}

	return copyRecord(record), nil
}

// Get returns a copy of the record for the given date.
func (l *MemoryLog) Get(date string) (*domain.DayRecord, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	record, exists := l.days[date]
	if !exists {
		return nil, domain.ErrDayNotFound
	}

	return copyRecord(record), nil
}

// Remove deletes one logged item from the given date's record.
func (l *MemoryLog) Remove(date, itemID string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	record, exists := l.days[date]
	if !exists {
		return domain.ErrDayNotFound
	}

	for i, item := range record.Items {
		if item.ID == itemID {
			record.Items = append(record.Items[:i], record.Items[i+1:]...)
			return nil
		}
	}

	return domain.ErrItemNotFound
}

func copyRecord(record *domain.DayRecord) *domain.DayRecord {
	out := &domain.DayRecord{
		Date:  record.Date,
		Items: make([]domain.ResolvedItem, len(record.Items)),
	}
	copy(out.Items, record.Items)
	return out
}

package domain

import "errors"

var (
	// ErrInvalidItem is returned when a parsed item fails basic validation
	ErrInvalidItem = errors.New("invalid parsed item")

	// ErrFoodNotFound is returned when the lookup service has no detail
	// record for a food id
	ErrFoodNotFound = errors.New("food not found in lookup service")

	// ErrLookupFailure is returned when the nutrition lookup service fails
	// with a transport or parse error
	ErrLookupFailure = errors.New("nutrition lookup request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrDayNotFound is returned when no items have been logged for a date
	ErrDayNotFound = errors.New("no items logged for date")

	// ErrItemNotFound is returned when removing an item id that is not in
	// the day's record
	ErrItemNotFound = errors.New("logged item not found")
)

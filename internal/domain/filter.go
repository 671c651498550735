package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownFilterMode возвращается при неизвестном режиме фильтрации
var ErrUnknownFilterMode = errors.New("unknown booking filter mode")

// FilterMode selects which bookings of a customer are shown
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterUpcoming FilterMode = "upcoming"
	FilterPast     FilterMode = "past"
)

// ParseFilterMode parses a query value; an empty value means FilterAll
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUpcoming:
		return FilterUpcoming, nil
	case FilterPast:
		return FilterPast, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilterMode, s)
	}
}

// FilterBookings returns the bookings matching mode, preserving input order.
//
//   - upcoming: date >= now AND status in progress
//   - past:     date < now OR status closed
//   - all:      everything
//
// A booking with a closed status and a future date is therefore listed under
// past. A status outside both sets is listed only under all, whatever its date.
// The input slice is not modified; a new slice is always returned.
// Unknown modes behave as FilterAll.
func FilterBookings(bookings []CombinedBooking, mode FilterMode, now time.Time) []CombinedBooking {
	result := make([]CombinedBooking, 0, len(bookings))

	for _, b := range bookings {
		if b == nil {
			continue
		}
		if matchesFilter(b, mode, now) {
			result = append(result, b)
		}
	}

	return result
}

func matchesFilter(b CombinedBooking, mode FilterMode, now time.Time) bool {
	switch mode {
	case FilterUpcoming:
		return !b.RelevantDate().Before(now) && b.IsInProgress()
	case FilterPast:
		return (b.IsInProgress() && b.RelevantDate().Before(now)) || b.IsClosed()
	default:
		return true
	}
}

package domain

import (
	"time"

	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// DateOnly returns the calendar day of t, as seen in t's own location,
// at midnight UTC. Dates from different locations then compare by label.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsSameDay reports whether both times fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// IsDateInPast reports whether date is before the calendar day of now
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// Overlaps reports whether the booking occupies part of [start, start+duration).
// Intervals that only touch at a boundary do not overlap.
func (b *Booking) Overlaps(start types.TimeString, durationMinutes int) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	bookingEnd, err := b.StartTime.AddMinutes(b.DurationMinutes)
	if err != nil {
		return false
	}
	return b.StartTime.IsBefore(end) && bookingEnd.IsAfter(start)
}

// CountOverlapping counts active bookings overlapping [start, start+duration)
func CountOverlapping(bookings []*Booking, start types.TimeString, durationMinutes int) int {
	count := 0
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if b.Overlaps(start, durationMinutes) {
			count++
		}
	}
	return count
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FarrierBookingService/pkg/types"
)

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsSameDay(now, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestIsDateInPast_WallClockWestOfUTC(t *testing.T) {
	// 10:00 in UTC-5 is already 15:00 UTC, but it is still June 10 locally
	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, west)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsDateInPast(today, now))
	assert.True(t, IsSameDay(today, now))
	assert.True(t, IsDateInPast(today.AddDate(0, 0, -1), now))

	// 22:00 in UTC-5 is June 11 in UTC; the local calendar day still wins
	late := time.Date(2025, 6, 10, 22, 0, 0, 0, west)
	assert.True(t, IsSameDay(today, late))
	assert.False(t, IsDateInPast(today, late))
}

func TestDateOnly_EastOfUTC(t *testing.T) {
	east := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 6, 11, 1, 0, 0, 0, east)

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), DateOnly(now))
}

func TestCountOverlapping(t *testing.T) {
	booking := func(start string, duration int, status BookingStatus) *Booking {
		return &Booking{StartTime: types.TimeString(start), DurationMinutes: duration, Status: status}
	}

	bookings := []*Booking{
		booking("11:20", 20, StatusConfirmed), // 11:20-11:40 overlaps 11:30-12:00
		booking("11:00", 30, StatusPending),   // ends at 11:30, touches only
		booking("12:00", 30, StatusPending),   // starts at 12:00, touches only
		booking("11:30", 30, StatusCancelled), // inactive
		booking("11:45", 60, StatusCompleted), // completed still occupies the slot
		nil,
	}

	assert.Equal(t, 2, CountOverlapping(bookings, "11:30", 30))
	assert.Equal(t, 0, CountOverlapping(bookings, "09:00", 60))
}

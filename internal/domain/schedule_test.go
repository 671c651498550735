package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FarrierBookingService/pkg/ptr"
	"github.com/m04kA/FarrierBookingService/pkg/types"
)

func TestBuildWeeklySchedule_DefaultsMissingDays(t *testing.T) {
	saturday := DaySchedule{
		Weekday:   time.Saturday,
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString("09:00")),
		CloseTime: ptr.Ptr(types.TimeString("13:00")),
	}
	monday := DaySchedule{Weekday: time.Monday, IsOpen: false}

	week := BuildWeeklySchedule([]DaySchedule{saturday, monday})

	assert.Equal(t, saturday, week[time.Saturday])
	assert.False(t, week[time.Monday].IsOpen)
	assert.False(t, week[time.Sunday].IsOpen)

	tuesday := week[time.Tuesday]
	assert.True(t, tuesday.IsOpen)
	assert.Equal(t, types.TimeString(DefaultOpenTime), *tuesday.OpenTime)
	assert.Equal(t, types.TimeString(DefaultCloseTime), *tuesday.CloseTime)
}

func TestWeeklySchedule_DaysStartsMonday(t *testing.T) {
	days := BuildWeeklySchedule(nil).Days()

	assert.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday)
	assert.Equal(t, time.Sunday, days[6].Weekday)
}

func TestWeeklySchedule_ForDate(t *testing.T) {
	week := BuildWeeklySchedule(nil)
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Wednesday, week.ForDate(wednesday).Weekday)
}

func TestDaySchedule_Validate(t *testing.T) {
	assert.NoError(t, DaySchedule{Weekday: time.Sunday}.Validate())
	assert.NoError(t, DefaultDaySchedule(time.Monday).Validate())

	noHours := DaySchedule{Weekday: time.Monday, IsOpen: true}
	assert.ErrorIs(t, noHours.Validate(), ErrInvalidSchedule)

	inverted := DaySchedule{
		Weekday:   time.Monday,
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString("17:00")),
		CloseTime: ptr.Ptr(types.TimeString("08:00")),
	}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidSchedule)

	malformed := DaySchedule{
		Weekday:   time.Monday,
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString("8am")),
		CloseTime: ptr.Ptr(types.TimeString("17:00")),
	}
	assert.ErrorIs(t, malformed.Validate(), ErrInvalidSchedule)
}

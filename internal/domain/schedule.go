package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректном расписании
var ErrInvalidSchedule = errors.New("invalid availability schedule")

// DaySchedule is the availability of a provider on one weekday
type DaySchedule struct {
	Weekday   time.Weekday
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// WeeklySchedule holds one DaySchedule per weekday, indexed by time.Weekday
type WeeklySchedule [7]DaySchedule

// DefaultDaySchedule returns the availability applied to a weekday with no stored row:
// Monday to Friday open during DefaultOpenTime-DefaultCloseTime, weekends closed.
func DefaultDaySchedule(day time.Weekday) DaySchedule {
	if day == time.Saturday || day == time.Sunday {
		return DaySchedule{Weekday: day, IsOpen: false}
	}
	open := types.TimeString(DefaultOpenTime)
	closeAt := types.TimeString(DefaultCloseTime)
	return DaySchedule{Weekday: day, IsOpen: true, OpenTime: &open, CloseTime: &closeAt}
}

// BuildWeeklySchedule merges stored days over the defaults
func BuildWeeklySchedule(stored []DaySchedule) WeeklySchedule {
	var week WeeklySchedule
	for d := time.Sunday; d <= time.Saturday; d++ {
		week[d] = DefaultDaySchedule(d)
	}
	for _, day := range stored {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			continue
		}
		week[day.Weekday] = day
	}
	return week
}

// ForDate returns the schedule of the weekday of date
func (w WeeklySchedule) ForDate(date time.Time) DaySchedule {
	return w[date.Weekday()]
}

// Days returns the schedule as a slice starting from Monday
func (w WeeklySchedule) Days() []DaySchedule {
	days := make([]DaySchedule, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, w[time.Weekday(i%7)])
	}
	return days
}

// Validate checks that open days have a non-empty opening interval
func (d DaySchedule) Validate() error {
	if !d.IsOpen {
		return nil
	}
	if d.OpenTime == nil || d.CloseTime == nil {
		return fmt.Errorf("%w: %s is open but has no hours", ErrInvalidSchedule, d.Weekday)
	}
	if err := d.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s open time: %v", ErrInvalidSchedule, d.Weekday, err)
	}
	if err := d.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s close time: %v", ErrInvalidSchedule, d.Weekday, err)
	}
	if !d.OpenTime.IsBefore(*d.CloseTime) {
		return fmt.Errorf("%w: %s opens at %s but closes at %s",
			ErrInvalidSchedule, d.Weekday, *d.OpenTime, *d.CloseTime)
	}
	return nil
}

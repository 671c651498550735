package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.HorseID != nil && *req.HorseID <= 0 {
		return fmt.Errorf("%w: horseID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и попадает в окно записи провайдера
func validateDate(bookingDate, now time.Time, config *domain.ProviderSlotsConfig) error {
	if domain.IsDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if !config.WithinAdvanceWindow(bookingDate, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, config.AdvanceBookingDays)
	}

	return nil
}

// validateTimeSlot проверяет, что время начала лежит на сетке слотов
// от открытия и услуга заканчивается не позже закрытия
func validateTimeSlot(day domain.DaySchedule, startTime types.TimeString, slotDuration, duration int) error {
	if day.OpenTime == nil || day.CloseTime == nil {
		return ErrInvalidTimeSlot
	}

	open, err := day.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	start, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if start < open {
		return fmt.Errorf("%w: %s is before opening time %s", ErrInvalidTimeSlot, startTime, *day.OpenTime)
	}

	if (start-open)%slotDuration != 0 {
		return fmt.Errorf("%w: %s is not aligned to %d minute slots", ErrInvalidTimeSlot, startTime, slotDuration)
	}

	end, err := startTime.AddMinutes(duration)
	if err != nil || end.IsAfter(*day.CloseTime) {
		return fmt.Errorf("%w: service does not fit before closing time %s", ErrInvalidTimeSlot, *day.CloseTime)
	}

	return nil
}

// validateBookingTime проверяет, что бронирование не нарушает minBookingNoticeMinutes
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	if !domain.IsSameDay(bookingDate, now) {
		return nil
	}

	minAllowedTime, err := types.NewTimeString(now).AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		// Минимальное допустимое время уже завтра
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

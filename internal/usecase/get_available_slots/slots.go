package get_available_slots

import (
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// generateTimeSlots генерирует список возможных начал слотов на день.
// Слоты идут от открытия с шагом slotDuration и должны вмещать
// длительность услуги до закрытия. Для сегодняшней даты отбрасываются слоты,
// начинающиеся раньше now + minBookingNoticeMinutes.
func generateTimeSlots(
	day domain.DaySchedule,
	slotDuration int,
	serviceDuration int,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]types.TimeString, error) {
	if domain.IsDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return []types.TimeString{}, nil
	}

	openTime, closeTime := *day.OpenTime, *day.CloseTime

	allSlots := make([]types.TimeString, 0)
	for current := openTime; current.IsBefore(closeTime); {
		end, err := current.AddMinutes(serviceDuration)
		if err != nil {
			break
		}
		if end.IsAfter(closeTime) {
			break
		}
		allSlots = append(allSlots, current)

		if current, err = current.AddMinutes(slotDuration); err != nil {
			break
		}
	}

	if !domain.IsSameDay(requestDate, now) {
		return allSlots, nil
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		// Ближайшее допустимое время уже завтра
		return []types.TimeString{}, nil
	}

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowed) {
			available = append(available, slot)
		}
	}

	return available, nil
}

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
func calculateAvailableSpots(
	slots []types.TimeString,
	duration int,
	bookings []*domain.Booking,
	maxConcurrentBookings int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, slotStart := range slots {
		overlapping := domain.CountOverlapping(bookings, slotStart, duration)
		result[i] = domain.NewAvailableSlot(slotStart, duration, maxConcurrentBookings, overlapping)
	}

	return result
}

// serviceDuration возвращает длительность услуги, по умолчанию длительность слота
func serviceDuration(service *domain.ProviderService, config *domain.ProviderSlotsConfig) int {
	if service.DurationMinutes > 0 {
		return service.DurationMinutes
	}
	return config.SlotDurationMinutes
}

package domain

import "github.com/m04kA/FarrierBookingService/pkg/types"

// AvailableSlot is one start time on a provider's grid together with how many
// more visits the provider can still take at that time.
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int
	TotalSpots      int
}

// NewAvailableSlot builds a slot from the provider capacity and the number of
// active bookings overlapping it. Overbooked slots report zero spots.
func NewAvailableSlot(start types.TimeString, durationMinutes, capacity, overlapping int) AvailableSlot {
	return AvailableSlot{
		StartTime:       start,
		DurationMinutes: durationMinutes,
		AvailableSpots:  max(capacity-overlapping, 0),
		TotalSpots:      capacity,
	}
}

// EndTime is the moment the farrier visit started in this slot would finish
func (s *AvailableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

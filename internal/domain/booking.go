package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// BookingStatus represents the status of a fixed-date booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a single-date, single-time farrier appointment
type Booking struct {
	ID              int64
	CustomerID      int64
	ProviderID      int64
	ServiceID       int64
	HorseID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice decimal.Decimal
	HorseName    string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind implements CombinedBooking
func (b *Booking) Kind() BookingKind {
	return KindFixed
}

// RelevantDate implements CombinedBooking
func (b *Booking) RelevantDate() time.Time {
	return b.BookingDate
}

// IsInProgress implements CombinedBooking: pending or confirmed
func (b *Booking) IsInProgress() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsClosed implements CombinedBooking: completed or cancelled
func (b *Booking) IsClosed() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsInProgress()
}

var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionBooking reports whether a fixed booking may move from one status to another
func CanTransitionBooking(from, to BookingStatus) bool {
	return bookingTransitions[from][to]
}

// IsValidBookingStatus reports whether s is a known fixed booking status
func IsValidBookingStatus(s BookingStatus) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// ProviderBookingsFilter фильтр для получения бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

package domain

import "time"

// BookingKind discriminates the two booking shapes shown in one list
type BookingKind string

const (
	KindFixed    BookingKind = "fixed"
	KindFlexible BookingKind = "flexible"
)

// CombinedBooking is either a fixed *Booking or a flexible *RouteOrder.
//
// RelevantDate is BookingDate for fixed bookings and DateTo for route orders.
// IsInProgress and IsClosed are evaluated against the status set of the
// concrete variant; an unknown status is neither in progress nor closed.
type CombinedBooking interface {
	Kind() BookingKind
	RelevantDate() time.Time
	IsInProgress() bool
	IsClosed() bool
}

var (
	_ CombinedBooking = (*Booking)(nil)
	_ CombinedBooking = (*RouteOrder)(nil)
)

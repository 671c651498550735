package domain

import "time"

// RouteOrderStatus represents the status of a flexible (date-range) order
type RouteOrderStatus string

const (
	RouteStatusPending   RouteOrderStatus = "pending"
	RouteStatusInRoute   RouteOrderStatus = "in_route"
	RouteStatusCompleted RouteOrderStatus = "completed"
	RouteStatusCancelled RouteOrderStatus = "cancelled"
)

// RouteOrder is an open date-range service request fulfilled during
// a provider's route. It is not tied to a single horse.
type RouteOrder struct {
	ID         int64
	CustomerID int64
	ProviderID int64
	DateFrom   time.Time
	DateTo     time.Time
	Status     RouteOrderStatus
	HorseCount int
	Location   string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind implements CombinedBooking
func (o *RouteOrder) Kind() BookingKind {
	return KindFlexible
}

// RelevantDate implements CombinedBooking: the end of the range
func (o *RouteOrder) RelevantDate() time.Time {
	return o.DateTo
}

// IsInProgress implements CombinedBooking: pending or in_route
func (o *RouteOrder) IsInProgress() bool {
	return o.Status == RouteStatusPending || o.Status == RouteStatusInRoute
}

// IsClosed implements CombinedBooking: completed or cancelled
func (o *RouteOrder) IsClosed() bool {
	return o.Status == RouteStatusCompleted || o.Status == RouteStatusCancelled
}

var routeTransitions = map[RouteOrderStatus]map[RouteOrderStatus]bool{
	RouteStatusPending:   {RouteStatusInRoute: true, RouteStatusCancelled: true},
	RouteStatusInRoute:   {RouteStatusCompleted: true, RouteStatusCancelled: true},
	RouteStatusCompleted: {},
	RouteStatusCancelled: {},
}

// CanTransitionRoute reports whether a route order may move from one status to another
func CanTransitionRoute(from, to RouteOrderStatus) bool {
	next, ok := routeTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsValidRouteOrderStatus reports whether s is a known route order status
func IsValidRouteOrderStatus(s RouteOrderStatus) bool {
	_, ok := routeTransitions[s]
	return ok
}

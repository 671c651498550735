package cancel_booking

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error
}

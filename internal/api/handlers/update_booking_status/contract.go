package update_booking_status

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error
	GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error)
}

package get_booking

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error)
}

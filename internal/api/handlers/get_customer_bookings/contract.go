package get_customer_bookings

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.CombinedBookingListResponse, error)
}

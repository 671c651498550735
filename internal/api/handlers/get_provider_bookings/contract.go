package get_provider_bookings

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error)
}

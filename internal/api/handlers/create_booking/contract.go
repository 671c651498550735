package create_booking

import (
	"context"

	createBooking "github.com/m04kA/FarrierBookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

package get_booking_steps

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/usecase/resolve_booking_steps"
)

type UseCase interface {
	Execute(ctx context.Context, req *resolve_booking_steps.Request) (*resolve_booking_steps.Response, error)
}

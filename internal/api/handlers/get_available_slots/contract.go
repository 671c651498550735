package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/FarrierBookingService/internal/usecase/get_available_slots"
)

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

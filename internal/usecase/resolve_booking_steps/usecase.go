package resolve_booking_steps

import (
	"context"
	"fmt"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// UseCase use case для определения шагов мастера создания бронирования
type UseCase struct {
	horseRepo HorseRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(horseRepo HorseRepository, logger Logger) *UseCase {
	return &UseCase{
		horseRepo: horseRepo,
		logger:    logger,
	}
}

// Execute считает лошадей клиента и возвращает видимые шаги мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	horses, err := uc.horseRepo.GetByCustomerID(ctx, req.CustomerID)
	if err != nil {
		uc.logger.Error("ResolveBookingSteps: failed to get horses of customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get horses: %v", ErrInternal, err)
	}

	steps, err := domain.ResolveSteps(len(horses), req.IsFlexible)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		Steps:      steps,
		HorseCount: len(horses),
	}
	if len(horses) == 1 && !req.IsFlexible {
		id := horses[0].ID
		resp.DefaultHorseID = &id
	}

	uc.logger.Info("ResolveBookingSteps: customer=%d, horses=%d, flexible=%t, steps=%v",
		req.CustomerID, len(horses), req.IsFlexible, steps)

	return resp, nil
}

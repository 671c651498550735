package create_horse

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/horses/models"
)

type HorseService interface {
	Create(ctx context.Context, req *models.CreateHorseRequest) (*models.HorseResponse, error)
}

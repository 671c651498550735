package list_horses

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/horses/models"
)

type HorseService interface {
	List(ctx context.Context, customerID int64) (*models.HorseListResponse, error)
}

package get_provider_config

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
)

type ProviderService interface {
	GetConfig(ctx context.Context, providerID int64) (*models.ConfigResponse, error)
}

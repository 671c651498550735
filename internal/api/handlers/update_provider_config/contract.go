package update_provider_config

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
)

type ProviderService interface {
	UpdateConfig(ctx context.Context, providerID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

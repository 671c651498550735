package get_provider_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/service/providers"
)

const (
	msgInvalidProviderID = "некорректный ID кузнеца"
	msgProviderNotFound  = "кузнец не найден"
)

type Handler struct {
	service ProviderService
	logger  handlers.Logger
}

func NewHandler(service ProviderService, logger handlers.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/config
// Публичный endpoint - без авторизации.
// Если конфигурация не сохранена, сервис вернёт значения по умолчанию (isDefault=true).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/config - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.GetConfig(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, providers.ErrProviderNotFound) {
			h.logger.Warn("GET /providers/{id}/config - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}

		h.logger.Error("GET /providers/{id}/config - Failed to get config: provider_id=%d, error=%v",
			providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/config - Config retrieved successfully: provider_id=%d, default=%t",
		providerID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}

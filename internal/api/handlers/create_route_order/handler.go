package create_route_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные заказа"
	msgProviderNotFound   = "кузнец не найден"
)

type Handler struct {
	service RouteOrderService
	logger  handlers.Logger
}

func NewHandler(service RouteOrderService, logger handlers.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/route-orders
// Заказ на выезд кузнеца в диапазоне дат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /route-orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRouteOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /route-orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CustomerID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, routeorders.ErrInvalidInput):
			h.logger.Warn("POST /route-orders - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, routeorders.ErrProviderNotFound):
			h.logger.Warn("POST /route-orders - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("POST /route-orders - Failed to create route order: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /route-orders - Route order created successfully: order_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

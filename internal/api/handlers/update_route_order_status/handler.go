package update_route_order_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

const (
	msgInvalidOrderID       = "некорректный ID заказа"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус заказа"
	msgNotFound             = "заказ не найден"
	msgForbidden            = "доступ запрещен"
	msgTransitionNotAllowed = "переход в этот статус недопустим"
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

// Handle PATCH /api/v1/route-orders/{orderId}/status
// Body: {"status": "in_route" | "completed" | "cancelled", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := handlers.PathInt64(r, "orderId")
	if err != nil {
		h.logger.Warn("PATCH /route-orders/{id}/status - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /route-orders/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /route-orders/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, routeorders.ErrInvalidInput):
			h.logger.Warn("PATCH /route-orders/{id}/status - Invalid status: order_id=%d, error=%v", orderID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, routeorders.ErrRouteOrderNotFound):
			h.logger.Warn("PATCH /route-orders/{id}/status - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, routeorders.ErrAccessDenied):
			h.logger.Warn("PATCH /route-orders/{id}/status - Access denied: order_id=%d, user_id=%d", orderID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, routeorders.ErrInvalidTransition):
			h.logger.Warn("PATCH /route-orders/{id}/status - %v", err)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		default:
			h.logger.Error("PATCH /route-orders/{id}/status - Failed to update status: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /route-orders/{id}/status - Status updated: order_id=%d, status=%s, user_id=%d",
		orderID, result.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

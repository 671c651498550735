package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidFilter = "некорректный фильтр, ожидается all, upcoming или past"
)

type Handler struct {
	service BookingService
	logger  handlers.Logger
}

func NewHandler(service BookingService, logger handlers.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/me/bookings
// Query params: filter = all | upcoming | past (по умолчанию all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.GetCustomerBookingsRequest{
		CustomerID: userID,
		Filter:     r.URL.Query().Get("filter"),
	}

	result, err := h.service.GetCustomerBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /customers/me/bookings - Invalid filter: user_id=%d, filter=%q", userID, serviceReq.Filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /customers/me/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/me/bookings - Bookings retrieved successfully: user_id=%d, filter=%s, count=%d",
		userID, result.Filter, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

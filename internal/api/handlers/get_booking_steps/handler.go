package get_booking_steps

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/usecase/resolve_booking_steps"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidFlexible = "параметр flexible должен быть true или false"
)

type Handler struct {
	useCase UseCase
	logger  handlers.Logger
}

func NewHandler(useCase UseCase, logger handlers.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-steps?flexible=true
// Возвращает видимые шаги мастера для текущего клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-steps - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	isFlexible := false
	if raw := r.URL.Query().Get("flexible"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /booking-steps - Invalid flexible=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidFlexible)
			return
		}
		isFlexible = parsed
	}

	resp, err := h.useCase.Execute(r.Context(), &resolve_booking_steps.Request{
		CustomerID: userID,
		IsFlexible: isFlexible,
	})
	if err != nil {
		if errors.Is(err, resolve_booking_steps.ErrInvalidInput) {
			h.logger.Warn("GET /booking-steps - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /booking-steps - Failed to resolve steps: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}

package create_horse

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/horses"
	"github.com/m04kA/FarrierBookingService/internal/service/horses/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные лошади"
)

type Handler struct {
	service HorseService
	logger  handlers.Logger
}

func NewHandler(service HorseService, logger handlers.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/horses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /horses - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateHorseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /horses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CustomerID = userID

	horse, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, horses.ErrInvalidInput) {
			h.logger.Warn("POST /horses - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /horses - Failed to create horse: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /horses - Horse created: horse_id=%d, user_id=%d", horse.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, horse)
}

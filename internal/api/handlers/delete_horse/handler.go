package delete_horse

import (
	"errors"
	"net/http"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/horses"
)

const (
	msgInvalidHorseID = "некорректный ID лошади"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "лошадь не найдена"
	msgHorseInUse     = "на лошадь оформлены бронирования"
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

// Handle DELETE /api/v1/horses/{horseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	horseID, err := handlers.PathInt64(r, "horseId")
	if err != nil {
		h.logger.Warn("DELETE /horses/{id} - Invalid horse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHorseID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /horses/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), horseID, userID); err != nil {
		switch {
		case errors.Is(err, horses.ErrHorseNotFound):
			h.logger.Warn("DELETE /horses/{id} - Horse not found: horse_id=%d, user_id=%d", horseID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, horses.ErrHorseInUse):
			h.logger.Warn("DELETE /horses/{id} - Horse has bookings: horse_id=%d", horseID)
			handlers.RespondConflict(w, msgHorseInUse)

		default:
			h.logger.Error("DELETE /horses/{id} - Failed to delete horse: horse_id=%d, error=%v", horseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /horses/{id} - Horse deleted: horse_id=%d, user_id=%d", horseID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

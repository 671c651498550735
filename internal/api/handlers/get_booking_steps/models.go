package get_booking_steps

import (
	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/internal/usecase/resolve_booking_steps"
)

// Response шаги мастера бронирования
type Response struct {
	Steps          []domain.WizardStep `json:"steps"`
	HorseCount     int                 `json:"horseCount"`
	DefaultHorseID *int64              `json:"defaultHorseId,omitempty"`
}

func fromUseCaseResponse(resp *resolve_booking_steps.Response) *Response {
	return &Response{
		Steps:          resp.Steps,
		HorseCount:     resp.HorseCount,
		DefaultHorseID: resp.DefaultHorseID,
	}
}

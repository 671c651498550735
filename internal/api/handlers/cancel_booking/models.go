package cancel_booking

import (
	"strings"

	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

// cancelBody тело PATCH /cancel, может отсутствовать целиком
type cancelBody struct {
	Reason string `json:"cancellationReason"`
}

func (b cancelBody) toService(userID int64) *models.CancelBookingRequest {
	// Пробелы и переводы строк схлопываются в один пробел
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: strings.Join(strings.Fields(b.Reason), " "),
	}
}

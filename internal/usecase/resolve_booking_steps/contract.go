package resolve_booking_steps

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// HorseRepository интерфейс репозитория лошадей
type HorseRepository interface {
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Horse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

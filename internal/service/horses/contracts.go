package horses

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// HorseRepository интерфейс репозитория лошадей
type HorseRepository interface {
	Create(ctx context.Context, horse *domain.Horse) (*domain.Horse, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Horse, error)
	Delete(ctx context.Context, id, customerID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

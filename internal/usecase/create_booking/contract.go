package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetService(ctx context.Context, providerID, serviceID int64) (*domain.ProviderService, error)
	GetSlotsConfig(ctx context.Context, providerID int64) (*domain.ProviderSlotsConfig, error)
	GetSchedule(ctx context.Context, providerID int64) ([]domain.DaySchedule, error)
}

// HorseRepository интерфейс репозитория лошадей
type HorseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Horse, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Horse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

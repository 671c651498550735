package routeorders

import (
	"context"
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// RouteOrderRepository интерфейс репозитория заказов по маршруту
type RouteOrderRepository interface {
	Create(ctx context.Context, order *domain.RouteOrder) (*domain.RouteOrder, error)
	GetByID(ctx context.Context, id int64) (*domain.RouteOrder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RouteOrderStatus, reason *string) error
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

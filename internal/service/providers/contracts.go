package providers

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров, конфигурации слотов и расписания
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetSlotsConfig(ctx context.Context, providerID int64) (*domain.ProviderSlotsConfig, error)
	UpsertSlotsConfig(ctx context.Context, config *domain.ProviderSlotsConfig) (*domain.ProviderSlotsConfig, error)
	GetSchedule(ctx context.Context, providerID int64) ([]domain.DaySchedule, error)
	ReplaceSchedule(ctx context.Context, providerID int64, days []domain.DaySchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

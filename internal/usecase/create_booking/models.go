package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента
	ProviderID int64            // ID провайдера (кузнеца)
	ServiceID  int64            // ID услуги
	HorseID    *int64           // ID лошади, nil = выбрать единственную лошадь клиента
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CustomerID      int64
	ProviderID      int64
	ServiceID       int64
	HorseID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные
	ServiceName  string
	ServicePrice decimal.Decimal
	HorseName    string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

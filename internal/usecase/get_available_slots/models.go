package get_available_slots

import (
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID int64     // ID провайдера
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time              // Дата, на которую запрашивались слоты
	ProviderID int64                  // ID провайдера
	ServiceID  int64                  // ID услуги
	IsOpen     bool                   // Работает ли провайдер в этот день
	Slots      []domain.AvailableSlot // Список слотов
}

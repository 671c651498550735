package resolve_booking_steps

import "github.com/m04kA/FarrierBookingService/internal/domain"

// Request модель запроса шагов мастера бронирования
type Request struct {
	CustomerID int64
	IsFlexible bool // true = маршрутный заказ на диапазон дат
}

// Response видимые шаги мастера
type Response struct {
	Steps          []domain.WizardStep
	HorseCount     int
	DefaultHorseID *int64 // лошадь, выбранная неявно (ровно одна у клиента)
}

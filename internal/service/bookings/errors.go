package bookings

import "errors"

// Ошибки сервиса бронирований. Хендлеры сопоставляют их с HTTP статусами.
var (
	ErrBookingNotFound  = errors.New("bookings: booking not found")
	ErrProviderNotFound = errors.New("bookings: provider not found")

	// ErrAccessDenied пользователь не клиент и не владелец провайдера
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotCancel запись уже закрыта
	ErrCannotCancel      = errors.New("bookings: booking is closed and cannot be cancelled")
	ErrInvalidTransition = errors.New("bookings: status transition is not allowed")

	ErrInvalidInput = errors.New("bookings: invalid input")
	ErrInternal     = errors.New("bookings: internal error")
)

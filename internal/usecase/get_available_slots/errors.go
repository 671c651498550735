package get_available_slots

import "errors"

var (
	ErrProviderNotFound = errors.New("get_available_slots: provider not found")
	ErrServiceNotFound  = errors.New("get_available_slots: service not found")

	// ErrServiceInactive услуга выключена провайдером и не бронируется
	ErrServiceInactive = errors.New("get_available_slots: service is inactive")

	// ErrDateTooFarInFuture дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is beyond the booking window")

	ErrInvalidInput = errors.New("get_available_slots: invalid input")
	ErrInternal     = errors.New("get_available_slots: internal error")
)

package horses

import "errors"

var (
	// ErrHorseNotFound возвращается, когда лошадь не найдена у клиента
	ErrHorseNotFound = errors.New("horse not found")

	// ErrHorseInUse возвращается, когда на лошадь оформлены бронирования
	ErrHorseInUse = errors.New("horse has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

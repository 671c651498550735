package horse

import "errors"

var (
	// ErrHorseNotFound возвращается, когда лошадь не найдена
	ErrHorseNotFound = errors.New("horse.repository: horse not found")

	// ErrHorseInUse возвращается при удалении лошади, на которую есть бронирования
	ErrHorseInUse = errors.New("horse.repository: horse is referenced by bookings")

	ErrBuildQuery = errors.New("horse.repository: failed to build query")
	ErrExecQuery  = errors.New("horse.repository: failed to execute query")
	ErrScanRow    = errors.New("horse.repository: failed to scan row")
)

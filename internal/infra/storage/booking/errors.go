package booking

import "errors"

var (
	// ErrBookingNotFound бронирование с таким ID отсутствует
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusChanged статус записи изменился между чтением и обновлением
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrConcurrentWrite слот изменён параллельной сериализуемой транзакцией
	ErrConcurrentWrite = errors.New("booking.repository: concurrent booking write")

	// ErrBuildQuery ошибка сборки SQL через squirrel
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery ошибка выполнения запроса в PostgreSQL
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

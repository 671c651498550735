package routeorder

import "errors"

var (
	// ErrRouteOrderNotFound возвращается, когда заказ не найден
	ErrRouteOrderNotFound = errors.New("routeorder.repository: route order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("routeorder.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("routeorder.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("routeorder.repository: failed to scan row")
)

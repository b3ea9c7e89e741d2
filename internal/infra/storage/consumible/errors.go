package consumible

import "errors"

var (
	// ErrConsumibleNotFound возвращается, когда consumible не найден
	ErrConsumibleNotFound = errors.New("consumible.repository: consumible not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("consumible.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("consumible.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("consumible.repository: failed to scan row")
)

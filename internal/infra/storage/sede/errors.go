package sede

import "errors"

var (
	// ErrSedeNotFound возвращается, когда sede не найдена
	ErrSedeNotFound = errors.New("sede.repository: sede not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sede.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sede.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sede.repository: failed to scan row")
)

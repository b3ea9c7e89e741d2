package reserva

import "errors"

var (
	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("reserva.repository: reserva not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reserva.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reserva.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reserva.repository: failed to scan row")

	// ErrEncodeItems возвращается при ошибке сериализации позиций заказа
	ErrEncodeItems = errors.New("reserva.repository: failed to encode items")

	// ErrNoTransition возвращается, когда резервация существует,
	// но её статус не допускает запрошенный переход
	ErrNoTransition = errors.New("reserva.repository: status transition not allowed")
)

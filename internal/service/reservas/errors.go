package reservas

import "errors"

var (
	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("reserva not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда резервацию нельзя отменить:
	// она не в статусе ACTIVA либо слот уже начался
	ErrCannotCancel = errors.New("reserva cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package backoffice

import "errors"

var (
	// ErrUsuarioNotFound возвращается, когда пользователь не найден в backoffice
	ErrUsuarioNotFound = errors.New("usuario not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backoffice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("backoffice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что backoffice недоступен и резервацию следует обрабатывать
	// без обогащения данными пользователя
	ErrServiceDegraded = errors.New("backoffice unavailable: graceful degradation applied")
)

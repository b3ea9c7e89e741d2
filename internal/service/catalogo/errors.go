package catalogo

import "errors"

var (
	// ErrSedeNotFound возвращается, когда sede не найдена
	ErrSedeNotFound = errors.New("sede not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package get_available_slots

import "errors"

var (
	// ErrSedeNotFound возвращается, когда sede не найдена
	ErrSedeNotFound = errors.New("get_available_slots: sede not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт резервации
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidTurno возвращается при некорректном turno
	ErrInvalidTurno = errors.New("get_available_slots: invalid turno")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

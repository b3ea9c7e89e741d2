package create_reserva

import "errors"

var (
	// ErrSedeNotFound возвращается, когда sede не найдена
	ErrSedeNotFound = errors.New("create_reserva: sede not found")

	// ErrInvalidDate возвращается при некорректной дате резервации
	ErrInvalidDate = errors.New("create_reserva: invalid fecha")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт резервации
	ErrDateTooFarInFuture = errors.New("create_reserva: fecha is too far in the future")

	// ErrInvalidTurno возвращается при некорректном turno
	ErrInvalidTurno = errors.New("create_reserva: invalid turno")

	// ErrInvalidSlot возвращается, когда время начала не соответствует
	// ни одному слоту turno
	ErrInvalidSlot = errors.New("create_reserva: invalid slot")

	// ErrSlotAlreadyStarted возвращается при попытке резервировать слот,
	// который уже начался
	ErrSlotAlreadyStarted = errors.New("create_reserva: slot already started")

	// ErrSlotNotAvailable возвращается, когда в слоте нет свободных мест
	ErrSlotNotAvailable = errors.New("create_reserva: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reserva: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reserva: internal error")
)

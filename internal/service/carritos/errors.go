package carritos

import "errors"

var (
	// ErrCarritoNotFound возвращается, когда каррито не найдено или истек TTL
	ErrCarritoNotFound = errors.New("carrito not found")

	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("reserva not found")

	// ErrReservaNotFinalizable возвращается при попытке открыть каррито
	// для резервации в терминальном статусе
	ErrReservaNotFinalizable = errors.New("reserva cannot receive a carrito")

	// ErrConsumibleNotFound возвращается, когда consumible не найден
	ErrConsumibleNotFound = errors.New("consumible not found")

	// ErrConsumibleNoDisponible возвращается при попытке добавить
	// недоступный consumible
	ErrConsumibleNoDisponible = errors.New("consumible no disponible")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

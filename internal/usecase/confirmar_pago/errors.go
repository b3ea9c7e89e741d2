package confirmar_pago

import "errors"

var (
	// ErrCarritoNotFound возвращается, когда каррито не найдено или истек TTL
	ErrCarritoNotFound = errors.New("confirmar_pago: carrito not found")

	// ErrReservaNotFound возвращается, когда резервация каррито не найдена
	ErrReservaNotFound = errors.New("confirmar_pago: reserva not found")

	// ErrReservaNotFinalizable возвращается, когда резервация не в статусе,
	// допускающем подтверждение оплаты (ACTIVA или CONFIRMADA)
	ErrReservaNotFinalizable = errors.New("confirmar_pago: reserva cannot be finalized")

	// ErrInvalidMetodoPago возвращается при неизвестном методе оплаты
	ErrInvalidMetodoPago = errors.New("confirmar_pago: invalid metodo de pago")

	// ErrSaldoInsuficiente возвращается, когда на счету пользователя
	// не хватает средств для оплаты со счета
	ErrSaldoInsuficiente = errors.New("confirmar_pago: saldo insuficiente")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirmar_pago: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirmar_pago: internal error")
)

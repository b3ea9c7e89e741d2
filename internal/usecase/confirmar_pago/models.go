package confirmar_pago

// Request модель запроса подтверждения оплаты
type Request struct {
	CarritoID  string // ID каррито
	MetodoPago string // "efectivo", "transferencia", "saldo_cuenta"
	Confirmado bool   // Второй шаг для методов с ручным подтверждением
}

// Response модель ответа подтверждения оплаты.
// Для методов с ручным подтверждением первый вызов возвращает расклад сумм
// с RequiereConfirmacion = true, не финализируя резервацию
type Response struct {
	ReservaID    int64   `json:"reservaId"`
	MetodoPago   string  `json:"metodoPago"`
	Subtotal     float64 `json:"subtotal"`     // Сумма позиций каррито
	CostoReserva float64 `json:"costoReserva"` // Уже уплаченный депозит
	MontoACobrar float64 `json:"montoACobrar"` // Subtotal - CostoReserva (может быть отрицательным)

	RequiereConfirmacion bool `json:"requiereConfirmacion"`
	Finalizada           bool `json:"finalizada"`
}

package domain

// Default business values
const (
	// DefaultCostoReserva сенья, удерживаемая при создании брони
	// и зачитываемая в счет оплаты при финализации
	DefaultCostoReserva = 500.0

	DefaultDuracionSlotMinutes = 60
	DefaultDiasAnticipacion    = 14
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// EstadosTerminales статусы, из которых нет переходов
var EstadosTerminales = []ReservaStatus{
	StatusFinalizada,
	StatusCancelada,
	StatusAusente,
}

// EstadosQueOcupanCupo статусы, удерживающие место в слоте
// Занятость освобождается только отменой; финализация и неявка
// оставляют место занятым в учете дня
var EstadosQueOcupanCupo = []ReservaStatus{
	StatusActiva,
	StatusConfirmada,
	StatusFinalizada,
	StatusAusente,
}

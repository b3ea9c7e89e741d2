package domain

import (
	"strings"
	"time"

	"github.com/ucc-comedor/ComedorService/pkg/types"
)

// ReservaStatus represents the lifecycle status of a reservation
type ReservaStatus string

const (
	// StatusActiva initial status, assigned at creation
	StatusActiva ReservaStatus = "ACTIVA"
	// StatusConfirmada modeled for compatibility with the backoffice,
	// not produced by any transition owned by this service
	StatusConfirmada ReservaStatus = "CONFIRMADA"
	// StatusFinalizada terminal: payment confirmed by a cashier
	StatusFinalizada ReservaStatus = "FINALIZADA"
	// StatusCancelada terminal: cancelled by the diner before slot start
	StatusCancelada ReservaStatus = "CANCELADA"
	// StatusAusente terminal: no-show, set only from an external event
	StatusAusente ReservaStatus = "AUSENTE"
)

// MetodoPago payment method recorded on finalization
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "efectivo"
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoSaldoCuenta   MetodoPago = "saldo_cuenta"
)

// RequiereConfirmacion returns true for methods that need an explicit
// second confirmation from the cashier (manual money handling)
func (m MetodoPago) RequiereConfirmacion() bool {
	return m == MetodoEfectivo || m == MetodoTransferencia
}

// ParseMetodoPago validates a payment method string
func ParseMetodoPago(s string) (MetodoPago, bool) {
	switch MetodoPago(s) {
	case MetodoEfectivo, MetodoTransferencia, MetodoSaldoCuenta:
		return MetodoPago(s), true
	default:
		return "", false
	}
}

// ItemPedido is one consumable line of a reservation or cart
type ItemPedido struct {
	ConsumibleID   int64   `json:"consumibleId"`
	Nombre         string  `json:"nombre"`
	Tipo           string  `json:"tipo"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Cantidad       int     `json:"cantidad"`
}

// Subtotal returns precio * cantidad for the line
func (i *ItemPedido) Subtotal() float64 {
	return i.PrecioUnitario * float64(i.Cantidad)
}

// Reserva represents a dining reservation at a venue slot
type Reserva struct {
	ID     int64
	UserID int64
	SedeID int64

	Fecha      time.Time // дата без времени
	Turno      Turno
	SlotID     string
	SlotInicio types.TimeString
	SlotFin    types.TimeString

	Estado ReservaStatus

	// Items пустые при создании; заполняются снапшотом каррито при финализации
	Items []ItemPedido
	// Total равен costo de reserva при создании; заменяется суммой каррито при финализации
	Total float64

	MetodoPago  *MetodoPago
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EsTerminal returns true if no further transition is possible
func (r *Reserva) EsTerminal() bool {
	for _, s := range EstadosTerminales {
		if r.Estado == s {
			return true
		}
	}
	return false
}

// SlotComienzo returns the absolute start instant of the reserved slot
func (r *Reserva) SlotComienzo() time.Time {
	return r.SlotInicio.At(r.Fecha)
}

// PuedeCancelarse returns true when the diner may still cancel:
// status ACTIVA and slot start strictly in the future
func (r *Reserva) PuedeCancelarse(now time.Time) bool {
	return r.Estado == StatusActiva && r.SlotComienzo().After(now)
}

// PuedeFinalizarse returns true when a cashier may confirm payment
func (r *Reserva) PuedeFinalizarse() bool {
	return r.Estado == StatusActiva || r.Estado == StatusConfirmada
}

// OcupaCupo returns true if the reservation holds a spot in its slot
func (r *Reserva) OcupaCupo() bool {
	for _, s := range EstadosQueOcupanCupo {
		if r.Estado == s {
			return true
		}
	}
	return false
}

// ParseReservaStatus validates a status string (case-insensitive)
func ParseReservaStatus(s string) (ReservaStatus, bool) {
	switch ReservaStatus(strings.ToUpper(s)) {
	case StatusActiva, StatusConfirmada, StatusFinalizada, StatusCancelada, StatusAusente:
		return ReservaStatus(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// NormalizarReservaStatus maps an unrecognized persisted status to ACTIVA.
// Единственная точка совместимости со старыми записями (например "pendiente");
// вызывающий обязан залогировать warning, когда migrated == true
func NormalizarReservaStatus(s string) (status ReservaStatus, migrated bool) {
	if parsed, ok := ParseReservaStatus(s); ok {
		return parsed, false
	}
	return StatusActiva, true
}

// ReservasFilter filter for venue-side reservation listing
type ReservasFilter struct {
	SedeID       int64
	Fecha        *time.Time
	Turno        *Turno
	Estado       *ReservaStatus
	IncluirBajas bool // включать отмененные и неявки
}

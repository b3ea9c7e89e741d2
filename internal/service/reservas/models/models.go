package models

import (
	"errors"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

var (
	// ErrInvalidEstado возвращается при некорректном статусе резервации
	ErrInvalidEstado = errors.New("invalid reserva estado")

	// ErrInvalidTurno возвращается при некорректном turno
	ErrInvalidTurno = errors.New("invalid turno")
)

// Request модели

// GetUserReservasRequest запрос на получение резерваций пользователя
type GetUserReservasRequest struct {
	UserID int64   `json:"userId"`
	Estado *string `json:"estado,omitempty"`
}

// GetSedeReservasRequest запрос на получение резерваций sede
type GetSedeReservasRequest struct {
	SedeID       int64      `json:"sedeId"`
	Fecha        *time.Time `json:"fecha,omitempty"`        // Фильтр по дате (опционально)
	Turno        *string    `json:"turno,omitempty"`        // Фильтр по turno (опционально)
	Estado       *string    `json:"estado,omitempty"`       // Фильтр по статусу (опционально)
	IncluirBajas bool       `json:"incluirBajas,omitempty"` // Включить отмененные и неявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSedeReservasRequest) ToDomainFilter() (domain.ReservasFilter, error) {
	filter := domain.ReservasFilter{
		SedeID:       r.SedeID,
		Fecha:        r.Fecha,
		IncluirBajas: r.IncluirBajas,
	}

	if r.Turno != nil {
		turno, ok := domain.ParseTurno(*r.Turno)
		if !ok {
			return filter, ErrInvalidTurno
		}
		filter.Turno = &turno
	}

	if r.Estado != nil {
		estado, err := ToDomainReservaStatus(*r.Estado)
		if err != nil {
			return filter, err
		}
		filter.Estado = &estado
	}

	return filter, nil
}

// Response модели

// ItemPedidoResponse позиция заказа в ответе
type ItemPedidoResponse struct {
	ConsumibleID   int64   `json:"consumibleId"`
	Nombre         string  `json:"nombre"`
	Tipo           string  `json:"tipo"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Cantidad       int     `json:"cantidad"`
}

// ReservaResponse ответ с данными резервации
type ReservaResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	SedeID int64 `json:"sedeId"`

	Fecha      string `json:"fecha"`      // "2026-09-10"
	Turno      string `json:"turno"`      // "almuerzo"
	SlotID     string `json:"slotId"`     // "1-2026-09-10-almuerzo-0"
	SlotInicio string `json:"slotInicio"` // "12:00"
	SlotFin    string `json:"slotFin"`    // "13:00"

	Estado string `json:"estado"`

	Items []ItemPedidoResponse `json:"items"`
	Total float64              `json:"total"`

	MetodoPago  *string `json:"metodoPago,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservaListResponse ответ со списком резерваций
type ReservaListResponse struct {
	Reservas []ReservaResponse `json:"reservas"`
}

// Методы конвертации

// FromDomainReserva конвертирует domain модель в DTO
func FromDomainReserva(r *domain.Reserva) *ReservaResponse {
	if r == nil {
		return nil
	}

	resp := &ReservaResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		SedeID:     r.SedeID,
		Fecha:      r.Fecha.Format(domain.DateFormat),
		Turno:      string(r.Turno),
		SlotID:     r.SlotID,
		SlotInicio: r.SlotInicio.String(),
		SlotFin:    r.SlotFin.String(),
		Estado:     string(r.Estado),
		Items:      fromDomainItems(r.Items),
		Total:      r.Total,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.MetodoPago != nil {
		metodo := string(*r.MetodoPago)
		resp.MetodoPago = &metodo
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservaList конвертирует список domain моделей в DTO
func FromDomainReservaList(reservas []*domain.Reserva) *ReservaListResponse {
	resp := &ReservaListResponse{
		Reservas: make([]ReservaResponse, 0, len(reservas)),
	}

	for _, reserva := range reservas {
		if reservaResp := FromDomainReserva(reserva); reservaResp != nil {
			resp.Reservas = append(resp.Reservas, *reservaResp)
		}
	}

	return resp
}

// ToDomainReservaStatus конвертирует строку в domain.ReservaStatus с валидацией
func ToDomainReservaStatus(estado string) (domain.ReservaStatus, error) {
	status, ok := domain.ParseReservaStatus(estado)
	if !ok {
		return "", ErrInvalidEstado
	}
	return status, nil
}

func fromDomainItems(items []domain.ItemPedido) []ItemPedidoResponse {
	resp := make([]ItemPedidoResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemPedidoResponse{
			ConsumibleID:   item.ConsumibleID,
			Nombre:         item.Nombre,
			Tipo:           item.Tipo,
			PrecioUnitario: item.PrecioUnitario,
			Cantidad:       item.Cantidad,
		})
	}
	return resp
}

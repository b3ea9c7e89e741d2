package create_reserva

import (
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	createReserva "github.com/ucc-comedor/ComedorService/internal/usecase/create_reserva"
	"github.com/ucc-comedor/ComedorService/pkg/types"
)

// CreateReservaRequest HTTP request model
type CreateReservaRequest struct {
	SedeID     int64  `json:"sedeId"`
	Fecha      string `json:"fecha"`      // "2026-09-10"
	Turno      string `json:"turno"`      // "almuerzo"
	SlotInicio string `json:"slotInicio"` // "12:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservaRequest) ToUseCaseRequest(userID int64) (*createReserva.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	slotInicio, err := types.NewTimeStringFromString(r.SlotInicio)
	if err != nil {
		return nil, err
	}

	return &createReserva.Request{
		UserID:     userID,
		SedeID:     r.SedeID,
		Fecha:      fecha,
		Turno:      r.Turno,
		SlotInicio: slotInicio,
	}, nil
}

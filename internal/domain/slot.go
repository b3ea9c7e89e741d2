package domain

import (
	"fmt"
	"time"

	"github.com/ucc-comedor/ComedorService/pkg/types"
)

// TurnoHorario is one bookable sub-interval of a service period at a venue
type TurnoHorario struct {
	ID        string
	SedeID    int64
	Fecha     time.Time
	Turno     Turno
	Inicio    types.TimeString
	Fin       types.TimeString
	Capacidad int
}

// Comienzo returns the absolute start instant of the slot
func (s *TurnoHorario) Comienzo() time.Time {
	return s.Inicio.At(s.Fecha)
}

// SlotID derives the deterministic slot identifier
// from venue, date, period and sequence index
func SlotID(sedeID int64, fecha time.Time, turno Turno, idx int) string {
	return fmt.Sprintf("%d-%s-%s-%d", sedeID, fecha.Format(DateFormat), turno, idx)
}

// GenerarSlots produces the ordered slot sequence for a venue, date and
// service period, partitioning the period's fixed window into sub-intervals
// of duracionMin minutes. Deterministic, no side effects: same inputs always
// yield the same slots and IDs. An unknown period yields an empty sequence
func GenerarSlots(sedeID int64, fecha time.Time, turno Turno, capacidad int, duracionMin int) []TurnoHorario {
	ventana, ok := turno.Ventana()
	if !ok {
		return []TurnoHorario{}
	}
	if duracionMin <= 0 {
		duracionMin = DefaultDuracionSlotMinutes
	}

	slots := make([]TurnoHorario, 0)
	inicio := ventana.Inicio

	for idx := 0; !inicio.IsAfter(ventana.Fin) && inicio != ventana.Fin; idx++ {
		fin, err := inicio.AddMinutes(duracionMin)
		if err != nil || fin.IsAfter(ventana.Fin) {
			break
		}

		slots = append(slots, TurnoHorario{
			ID:        SlotID(sedeID, fecha, turno, idx),
			SedeID:    sedeID,
			Fecha:     fecha,
			Turno:     turno,
			Inicio:    inicio,
			Fin:       fin,
			Capacidad: capacidad,
		})

		inicio = fin
	}

	return slots
}

// BuscarSlot regenerates the slot set and returns the slot with the given
// start time, relying on generation determinism. ok == false when the start
// time does not match any slot of the period
func BuscarSlot(sedeID int64, fecha time.Time, turno Turno, capacidad int, duracionMin int, inicio types.TimeString) (TurnoHorario, bool) {
	for _, slot := range GenerarSlots(sedeID, fecha, turno, capacidad, duracionMin) {
		if slot.Inicio == inicio {
			return slot, true
		}
	}
	return TurnoHorario{}, false
}

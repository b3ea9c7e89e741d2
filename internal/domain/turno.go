package domain

import "github.com/ucc-comedor/ComedorService/pkg/types"

// Turno is one of the four fixed daily service periods
type Turno string

const (
	TurnoDesayuno Turno = "desayuno"
	TurnoAlmuerzo Turno = "almuerzo"
	TurnoMerienda Turno = "merienda"
	TurnoCena     Turno = "cena"
)

// Turnos lists the service periods in daily order
var Turnos = []Turno{TurnoDesayuno, TurnoAlmuerzo, TurnoMerienda, TurnoCena}

// VentanaServicio is the fixed daily window of a service period
type VentanaServicio struct {
	Inicio types.TimeString
	Fin    types.TimeString
}

// ventanasServicio фиксированные окна обслуживания комедора
var ventanasServicio = map[Turno]VentanaServicio{
	TurnoDesayuno: {Inicio: "07:00", Fin: "11:00"},
	TurnoAlmuerzo: {Inicio: "12:00", Fin: "15:00"},
	TurnoMerienda: {Inicio: "16:00", Fin: "19:00"},
	TurnoCena:     {Inicio: "20:00", Fin: "22:00"},
}

// ParseTurno validates a service period string
func ParseTurno(s string) (Turno, bool) {
	switch Turno(s) {
	case TurnoDesayuno, TurnoAlmuerzo, TurnoMerienda, TurnoCena:
		return Turno(s), true
	default:
		return "", false
	}
}

// Ventana returns the service window for the period
// ok == false for an unknown period
func (t Turno) Ventana() (VentanaServicio, bool) {
	v, ok := ventanasServicio[t]
	return v, ok
}

// Nombre returns the display name of the period
func (t Turno) Nombre() string {
	switch t {
	case TurnoDesayuno:
		return "Desayuno"
	case TurnoAlmuerzo:
		return "Almuerzo"
	case TurnoMerienda:
		return "Merienda"
	case TurnoCena:
		return "Cena"
	default:
		return string(t)
	}
}

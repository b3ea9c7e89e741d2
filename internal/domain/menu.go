package domain

import "time"

// MenuDia is the menu offered at a venue for one date and service period,
// resolved from the weekly grid maintained by the chef side
type MenuDia struct {
	SedeID  int64
	Fecha   time.Time
	Turno   Turno
	Platos  []Consumible
	Bebidas []Consumible
	Postres []Consumible
}

// EstaVacio returns true when no consumable is assigned
func (m *MenuDia) EstaVacio() bool {
	return len(m.Platos) == 0 && len(m.Bebidas) == 0 && len(m.Postres) == 0
}

// DiaSemana lowercase Spanish weekday used as the weekly grid key
func DiaSemana(fecha time.Time) string {
	switch fecha.Weekday() {
	case time.Monday:
		return "lunes"
	case time.Tuesday:
		return "martes"
	case time.Wednesday:
		return "miercoles"
	case time.Thursday:
		return "jueves"
	case time.Friday:
		return "viernes"
	case time.Saturday:
		return "sabado"
	default:
		return "domingo"
	}
}

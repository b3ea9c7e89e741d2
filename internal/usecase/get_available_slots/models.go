package get_available_slots

import (
	"time"
)

// Request модель запроса доступных слотов
type Request struct {
	SedeID int64     // ID sede
	Fecha  time.Time // Дата обслуживания (без времени)
	Turno  *string   // Turno (опционально; nil - все turnos дня)
}

// Slot один временной слот с текущей занятостью
type Slot struct {
	ID          string `json:"id"`         // "1-2026-09-10-almuerzo-0"
	Turno       string `json:"turno"`      // "almuerzo"
	Inicio      string `json:"inicio"`     // "12:00"
	Fin         string `json:"fin"`        // "13:00"
	Capacidad   int    `json:"capacidad"`  // Вместимость sede
	Ocupados    int    `json:"ocupados"`   // Занятые места
	Disponibles int    `json:"disponibles"`
	Disponible  bool   `json:"disponible"` // Есть места и слот еще не начался
}

// Response модель ответа со слотами
type Response struct {
	SedeID int64  `json:"sedeId"`
	Fecha  string `json:"fecha"` // "2026-09-10"
	Slots  []Slot `json:"slots"`
}

package create_reserva

import (
	"time"

	"github.com/ucc-comedor/ComedorService/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	UserID     int64            // ID пользователя
	SedeID     int64            // ID sede
	Fecha      time.Time        // Дата обслуживания (без времени)
	Turno      string           // Turno ("desayuno", "almuerzo", "merienda", "cena")
	SlotInicio types.TimeString // Время начала слота (например, "12:00")
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	SedeID int64 `json:"sedeId"`

	Fecha      string `json:"fecha"`      // "2026-09-10"
	Turno      string `json:"turno"`      // "almuerzo"
	SlotID     string `json:"slotId"`     // "1-2026-09-10-almuerzo-0"
	SlotInicio string `json:"slotInicio"` // "12:00"
	SlotFin    string `json:"slotFin"`    // "13:00"

	Estado string  `json:"estado"` // всегда ACTIVA при создании
	Total  float64 `json:"total"`  // costo de reserva

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

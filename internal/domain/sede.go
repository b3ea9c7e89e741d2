package domain

import "time"

// Sede is a cafeteria venue. Reference data managed externally;
// capacity is copied into generated slots
type Sede struct {
	ID        int64
	Nombre    string
	Direccion string
	Capacidad int
	Imagen    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

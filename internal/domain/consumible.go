package domain

import "time"

// TipoConsumible category of a consumable
type TipoConsumible string

const (
	TipoPlato  TipoConsumible = "plato"
	TipoBebida TipoConsumible = "bebida"
	TipoPostre TipoConsumible = "postre"
)

// ParseTipoConsumible validates a consumable category string
func ParseTipoConsumible(s string) (TipoConsumible, bool) {
	switch TipoConsumible(s) {
	case TipoPlato, TipoBebida, TipoPostre:
		return TipoConsumible(s), true
	default:
		return "", false
	}
}

// Consumible reference data owned by the chef/menu-management side;
// this service only reads it to price cart lines
type Consumible struct {
	ID          int64
	Nombre      string
	Tipo        TipoConsumible
	Descripcion string
	Precio      float64
	Disponible  bool
	Imagen      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import (
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// ItemPedidoResponse позиция каррито в ответе
type ItemPedidoResponse struct {
	ConsumibleID   int64   `json:"consumibleId"`
	Nombre         string  `json:"nombre"`
	Tipo           string  `json:"tipo"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Cantidad       int     `json:"cantidad"`
	Subtotal       float64 `json:"subtotal"`
}

// CarritoResponse ответ с данными каррито
type CarritoResponse struct {
	ID        string               `json:"id"`
	ReservaID int64                `json:"reservaId"`
	Items     []ItemPedidoResponse `json:"items"`
	Subtotal  float64              `json:"subtotal"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// FromDomainCarrito конвертирует domain модель в DTO
func FromDomainCarrito(c *domain.Carrito) *CarritoResponse {
	if c == nil {
		return nil
	}

	items := make([]ItemPedidoResponse, 0, len(c.Items))
	for i := range c.Items {
		item := c.Items[i]
		items = append(items, ItemPedidoResponse{
			ConsumibleID:   item.ConsumibleID,
			Nombre:         item.Nombre,
			Tipo:           item.Tipo,
			PrecioUnitario: item.PrecioUnitario,
			Cantidad:       item.Cantidad,
			Subtotal:       item.Subtotal(),
		})
	}

	return &CarritoResponse{
		ID:        c.ID,
		ReservaID: c.ReservaID,
		Items:     items,
		Subtotal:  c.Subtotal(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

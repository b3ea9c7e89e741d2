package domain

import "time"

// Carrito is the cashier-side cart assembled against one reservation.
// Ephemeral: lives in the key-value store with a TTL until confirmed or
// discarded; on confirmation its lines are snapshotted into the reservation
type Carrito struct {
	ID        string       `json:"id"`
	ReservaID int64        `json:"reservaId"`
	Items     []ItemPedido `json:"items"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// AgregarItem adds one unit of the consumable: increments the existing
// line or appends a new one with cantidad 1
func (c *Carrito) AgregarItem(consumible *Consumible) {
	for i := range c.Items {
		if c.Items[i].ConsumibleID == consumible.ID {
			c.Items[i].Cantidad++
			return
		}
	}
	c.Items = append(c.Items, ItemPedido{
		ConsumibleID:   consumible.ID,
		Nombre:         consumible.Nombre,
		Tipo:           string(consumible.Tipo),
		PrecioUnitario: consumible.Precio,
		Cantidad:       1,
	})
}

// QuitarItem removes one unit of the consumable; the line disappears
// when its cantidad reaches zero. Unknown IDs are a no-op
func (c *Carrito) QuitarItem(consumibleID int64) {
	for i := range c.Items {
		if c.Items[i].ConsumibleID != consumibleID {
			continue
		}
		c.Items[i].Cantidad--
		if c.Items[i].Cantidad <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Subtotal returns the sum of precio * cantidad over all lines
func (c *Carrito) Subtotal() float64 {
	total := 0.0
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}

// EstaVacio returns true when the cart has no lines
func (c *Carrito) EstaVacio() bool {
	return len(c.Items) == 0
}

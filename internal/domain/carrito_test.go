package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milanesa() *Consumible {
	return &Consumible{ID: 1, Nombre: "Milanesa con puré", Tipo: TipoPlato, Precio: 800, Disponible: true}
}

func gaseosa() *Consumible {
	return &Consumible{ID: 2, Nombre: "Gaseosa", Tipo: TipoBebida, Precio: 300, Disponible: true}
}

func TestCarrito_AgregarItem(t *testing.T) {
	c := &Carrito{ID: "c1", ReservaID: 10}

	c.AgregarItem(milanesa())
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Cantidad)

	// Mismo consumible incrementa la línea existente
	c.AgregarItem(milanesa())
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Cantidad)

	c.AgregarItem(gaseosa())
	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[1].Cantidad)
}

func TestCarrito_QuitarItem(t *testing.T) {
	c := &Carrito{}
	c.AgregarItem(milanesa())
	c.AgregarItem(milanesa())
	c.AgregarItem(gaseosa())

	c.QuitarItem(1)
	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].Cantidad)

	// Al llegar a cero la línea desaparece
	c.QuitarItem(1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].ConsumibleID)

	// Quitar un consumible inexistente no hace nada
	c.QuitarItem(99)
	assert.Len(t, c.Items, 1)
}

func TestCarrito_Subtotal(t *testing.T) {
	c := &Carrito{}
	assert.Zero(t, c.Subtotal())
	assert.True(t, c.EstaVacio())

	c.AgregarItem(milanesa())
	c.AgregarItem(milanesa())
	c.AgregarItem(gaseosa())

	// 2*800 + 1*300
	assert.InDelta(t, 1900.0, c.Subtotal(), 0.001)
	assert.False(t, c.EstaVacio())
}

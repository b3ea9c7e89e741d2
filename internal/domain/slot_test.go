package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/pkg/types"
)

func fechaTest(t *testing.T) time.Time {
	t.Helper()
	fecha, err := time.Parse(DateFormat, "2026-09-15")
	require.NoError(t, err)
	return fecha
}

func TestGenerarSlots_Almuerzo(t *testing.T) {
	fecha := fechaTest(t)

	slots := GenerarSlots(2, fecha, TurnoAlmuerzo, 40, 60)

	// Almuerzo 12:00-15:00 con slots de una hora
	require.Len(t, slots, 3)

	assert.Equal(t, "2-2026-09-15-almuerzo-0", slots[0].ID)
	assert.Equal(t, types.TimeString("12:00"), slots[0].Inicio)
	assert.Equal(t, types.TimeString("13:00"), slots[0].Fin)
	assert.Equal(t, types.TimeString("14:00"), slots[2].Inicio)
	assert.Equal(t, types.TimeString("15:00"), slots[2].Fin)

	for _, slot := range slots {
		assert.Equal(t, int64(2), slot.SedeID)
		assert.Equal(t, TurnoAlmuerzo, slot.Turno)
		assert.Equal(t, 40, slot.Capacidad)
	}
}

func TestGenerarSlots_TodosLosTurnos(t *testing.T) {
	fecha := fechaTest(t)

	tests := []struct {
		turno    Turno
		cantidad int
		primero  types.TimeString
		ultimo   types.TimeString
	}{
		{TurnoDesayuno, 4, "07:00", "10:00"},
		{TurnoAlmuerzo, 3, "12:00", "14:00"},
		{TurnoMerienda, 3, "16:00", "18:00"},
		{TurnoCena, 2, "20:00", "21:00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.turno), func(t *testing.T) {
			slots := GenerarSlots(1, fecha, tt.turno, 10, 60)
			require.Len(t, slots, tt.cantidad)
			assert.Equal(t, tt.primero, slots[0].Inicio)
			assert.Equal(t, tt.ultimo, slots[len(slots)-1].Inicio)
		})
	}
}

func TestGenerarSlots_Deterministico(t *testing.T) {
	fecha := fechaTest(t)

	a := GenerarSlots(3, fecha, TurnoCena, 25, 60)
	b := GenerarSlots(3, fecha, TurnoCena, 25, 60)

	assert.Equal(t, a, b)
}

func TestGenerarSlots_TurnoDesconocido(t *testing.T) {
	slots := GenerarSlots(1, fechaTest(t), Turno("brunch"), 10, 60)
	assert.Empty(t, slots)
}

func TestGenerarSlots_DuracionNoDivideVentana(t *testing.T) {
	// Cena 20:00-22:00: con slots de 45 minutos entran dos (20:00, 20:45);
	// el tercero terminaría 22:15, fuera de la ventana
	slots := GenerarSlots(1, fechaTest(t), TurnoCena, 10, 45)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("21:30"), slots[1].Fin)
}

func TestBuscarSlot(t *testing.T) {
	fecha := fechaTest(t)

	slot, ok := BuscarSlot(2, fecha, TurnoAlmuerzo, 40, 60, "13:00")
	require.True(t, ok)
	assert.Equal(t, "2-2026-09-15-almuerzo-1", slot.ID)
	assert.Equal(t, types.TimeString("14:00"), slot.Fin)

	_, ok = BuscarSlot(2, fecha, TurnoAlmuerzo, 40, 60, "13:30")
	assert.False(t, ok)
}

func TestTurnoHorario_Comienzo(t *testing.T) {
	fecha := fechaTest(t)
	slots := GenerarSlots(1, fecha, TurnoDesayuno, 10, 60)
	require.NotEmpty(t, slots)

	comienzo := slots[0].Comienzo()
	assert.Equal(t, 7, comienzo.Hour())
	assert.Equal(t, fecha.Day(), comienzo.Day())
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservaActiva(t *testing.T) *Reserva {
	t.Helper()
	fecha, err := time.Parse(DateFormat, "2026-09-15")
	require.NoError(t, err)
	return &Reserva{
		ID:         1,
		UserID:     7,
		SedeID:     2,
		Fecha:      fecha,
		Turno:      TurnoAlmuerzo,
		SlotID:     "2-2026-09-15-almuerzo-0",
		SlotInicio: "12:00",
		SlotFin:    "13:00",
		Estado:     StatusActiva,
		Total:      DefaultCostoReserva,
	}
}

func TestReserva_PuedeCancelarse(t *testing.T) {
	r := reservaActiva(t)

	antes := time.Date(2026, 9, 15, 11, 59, 0, 0, time.UTC)
	justo := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	despues := time.Date(2026, 9, 15, 12, 1, 0, 0, time.UTC)

	assert.True(t, r.PuedeCancelarse(antes))
	// El comienzo del slot debe ser estrictamente futuro
	assert.False(t, r.PuedeCancelarse(justo))
	assert.False(t, r.PuedeCancelarse(despues))

	r.Estado = StatusFinalizada
	assert.False(t, r.PuedeCancelarse(antes))

	r.Estado = StatusCancelada
	assert.False(t, r.PuedeCancelarse(antes))
}

func TestReserva_PuedeFinalizarse(t *testing.T) {
	r := reservaActiva(t)
	assert.True(t, r.PuedeFinalizarse())

	r.Estado = StatusConfirmada
	assert.True(t, r.PuedeFinalizarse())

	for _, estado := range EstadosTerminales {
		r.Estado = estado
		assert.False(t, r.PuedeFinalizarse(), "estado %s", estado)
	}
}

func TestReserva_EsTerminal(t *testing.T) {
	r := reservaActiva(t)
	assert.False(t, r.EsTerminal())

	for _, estado := range EstadosTerminales {
		r.Estado = estado
		assert.True(t, r.EsTerminal(), "estado %s", estado)
	}
}

func TestNormalizarReservaStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected ReservaStatus
		migrated bool
	}{
		{"ACTIVA", StatusActiva, false},
		{"activa", StatusActiva, false},
		{"FINALIZADA", StatusFinalizada, false},
		{"AUSENTE", StatusAusente, false},
		// Estados legados se normalizan a ACTIVA
		{"pendiente", StatusActiva, true},
		{"", StatusActiva, true},
		{"confirmada ", StatusActiva, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, migrated := NormalizarReservaStatus(tt.input)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.migrated, migrated)
		})
	}
}

func TestParseMetodoPago(t *testing.T) {
	m, ok := ParseMetodoPago("efectivo")
	require.True(t, ok)
	assert.True(t, m.RequiereConfirmacion())

	m, ok = ParseMetodoPago("transferencia")
	require.True(t, ok)
	assert.True(t, m.RequiereConfirmacion())

	m, ok = ParseMetodoPago("saldo_cuenta")
	require.True(t, ok)
	assert.False(t, m.RequiereConfirmacion())

	_, ok = ParseMetodoPago("tarjeta")
	assert.False(t, ok)
}

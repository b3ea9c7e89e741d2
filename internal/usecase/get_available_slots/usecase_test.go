package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
	"github.com/ucc-comedor/ComedorService/pkg/ptr"
)

type fakeSedeRepo struct {
	sedes map[int64]*domain.Sede
}

func (f *fakeSedeRepo) GetByID(ctx context.Context, id int64) (*domain.Sede, error) {
	s, ok := f.sedes[id]
	if !ok {
		return nil, sedeRepo.ErrSedeNotFound
	}
	return s, nil
}

type fakeOccupancy struct {
	counts map[string]int
}

func (f *fakeOccupancy) GetCount(ctx context.Context, slotID string) (int, error) {
	return f.counts[slotID], nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(sedes *fakeSedeRepo, occ *fakeOccupancy, now time.Time) *UseCase {
	uc := NewUseCase(sedes, occ, 14, 60, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_AllTurnos(t *testing.T) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{
		1: {ID: 1, Nombre: "Sede Centro", Capacidad: 50},
	}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(sedes, occ, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SedeID: 1,
		Fecha:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// desayuno 4 + almuerzo 3 + merienda 3 + cena 2
	assert.Len(t, resp.Slots, 12)
	for _, slot := range resp.Slots {
		assert.Equal(t, 50, slot.Capacidad)
		assert.Equal(t, 50, slot.Disponibles)
		assert.True(t, slot.Disponible)
	}
}

func TestExecute_SingleTurnoWithOccupancy(t *testing.T) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{
		1: {ID: 1, Nombre: "Sede Centro", Capacidad: 2},
	}}
	occ := &fakeOccupancy{counts: map[string]int{
		"1-2026-09-10-almuerzo-0": 2,
		"1-2026-09-10-almuerzo-1": 1,
	}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(sedes, occ, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SedeID: 1,
		Fecha:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Turno:  ptr.Ptr("almuerzo"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, 0, resp.Slots[0].Disponibles)
	assert.False(t, resp.Slots[0].Disponible)
	assert.Equal(t, 1, resp.Slots[1].Disponibles)
	assert.True(t, resp.Slots[1].Disponible)
	assert.Equal(t, 2, resp.Slots[2].Disponibles)
}

func TestExecute_StartedSlotsNotDisponible(t *testing.T) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{
		1: {ID: 1, Nombre: "Sede Centro", Capacidad: 10},
	}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	// Сегодня в 13:30: слоты 12:00 и 13:00 уже начались
	now := time.Date(2026, 9, 10, 13, 30, 0, 0, time.UTC)
	uc := newUseCase(sedes, occ, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SedeID: 1,
		Fecha:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Turno:  ptr.Ptr("almuerzo"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.False(t, resp.Slots[0].Disponible)
	assert.False(t, resp.Slots[1].Disponible)
	assert.True(t, resp.Slots[2].Disponible) // 14:00 еще впереди
}

func TestExecute_DateValidation(t *testing.T) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{
		1: {ID: 1, Capacidad: 10},
	}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(sedes, occ, now)

	t.Run("fecha pasada", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			SedeID: 1,
			Fecha:  time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("fecha fuera del horizonte", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			SedeID: 1,
			Fecha:  time.Date(2026, 9, 25, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("turno desconocido", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			SedeID: 1,
			Fecha:  time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			Turno:  ptr.Ptr("brunch"),
		})
		assert.ErrorIs(t, err, ErrInvalidTurno)
	})
}

func TestExecute_SedeNotFound(t *testing.T) {
	uc := newUseCase(
		&fakeSedeRepo{sedes: map[int64]*domain.Sede{}},
		&fakeOccupancy{counts: map[string]int{}},
		time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), &Request{
		SedeID: 404,
		Fecha:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSedeNotFound)
}

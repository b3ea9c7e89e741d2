package catalogo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
)

type fakeSedeRepo struct {
	sedes map[int64]*domain.Sede
}

func (r *fakeSedeRepo) GetAll(ctx context.Context) ([]*domain.Sede, error) {
	all := make([]*domain.Sede, 0, len(r.sedes))
	for _, s := range r.sedes {
		all = append(all, s)
	}
	return all, nil
}

func (r *fakeSedeRepo) GetByID(ctx context.Context, id int64) (*domain.Sede, error) {
	s, ok := r.sedes[id]
	if !ok {
		return nil, sedeRepo.ErrSedeNotFound
	}
	return s, nil
}

type fakeConsumibleRepo struct {
	consumibles []*domain.Consumible
}

func (r *fakeConsumibleRepo) GetAll(ctx context.Context, tipo *domain.TipoConsumible, includeUnavailable bool) ([]*domain.Consumible, error) {
	var out []*domain.Consumible
	for _, c := range r.consumibles {
		if tipo != nil && c.Tipo != *tipo {
			continue
		}
		if !includeUnavailable && !c.Disponible {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeConsumibleRepo) GetByID(ctx context.Context, id int64) (*domain.Consumible, error) {
	for _, c := range r.consumibles {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeMenuRepo struct {
	menu *domain.MenuDia
}

func (r *fakeMenuRepo) GetMenuDia(ctx context.Context, sedeID int64, fecha time.Time, turno domain.Turno) (*domain.MenuDia, error) {
	if r.menu != nil {
		return r.menu, nil
	}
	return &domain.MenuDia{SedeID: sedeID, Fecha: fecha, Turno: turno}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeSedeRepo, *fakeConsumibleRepo, *fakeMenuRepo) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{
		1: {ID: 1, Nombre: "Comedor Central", Capacidad: 40},
	}}
	consumibles := &fakeConsumibleRepo{consumibles: []*domain.Consumible{
		{ID: 10, Nombre: "Milanesa con pure", Tipo: domain.TipoPlato, Precio: 1800, Disponible: true},
		{ID: 11, Nombre: "Limonada", Tipo: domain.TipoBebida, Precio: 600, Disponible: true},
		{ID: 12, Nombre: "Flan", Tipo: domain.TipoPostre, Precio: 900, Disponible: false},
	}}
	menu := &fakeMenuRepo{}
	svc := NewService(sedes, consumibles, menu, nopLogger{})
	return svc, sedes, consumibles, menu
}

func TestService_GetSede(t *testing.T) {
	ctx := context.Background()

	t.Run("sede existente", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		resp, err := svc.GetSede(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Comedor Central", resp.Nombre)
		assert.Equal(t, 40, resp.Capacidad)
	})

	t.Run("sede inexistente", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.GetSede(ctx, 99)

		assert.ErrorIs(t, err, ErrSedeNotFound)
	})
}

func TestService_ListConsumibles(t *testing.T) {
	ctx := context.Background()

	t.Run("sin filtro excluye no disponibles", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		resp, err := svc.ListConsumibles(ctx, nil, false)

		require.NoError(t, err)
		require.Len(t, resp.Consumibles, 2)
	})

	t.Run("includeUnavailable devuelve todo el catalogo", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		resp, err := svc.ListConsumibles(ctx, nil, true)

		require.NoError(t, err)
		require.Len(t, resp.Consumibles, 3)
	})

	t.Run("filtro por tipo", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		tipo := "bebida"

		resp, err := svc.ListConsumibles(ctx, &tipo, false)

		require.NoError(t, err)
		require.Len(t, resp.Consumibles, 1)
		assert.Equal(t, "Limonada", resp.Consumibles[0].Nombre)
	})

	t.Run("tipo invalido", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		tipo := "entrada"

		_, err := svc.ListConsumibles(ctx, &tipo, false)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetMenuDia(t *testing.T) {
	ctx := context.Background()
	fecha := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("menu con posiciones", func(t *testing.T) {
		svc, _, _, menu := newTestService()
		menu.menu = &domain.MenuDia{
			SedeID: 1,
			Fecha:  fecha,
			Turno:  domain.TurnoAlmuerzo,
			Platos: []domain.Consumible{
				{ID: 10, Nombre: "Milanesa con pure", Tipo: domain.TipoPlato, Precio: 1800, Disponible: true},
			},
			Bebidas: []domain.Consumible{
				{ID: 11, Nombre: "Limonada", Tipo: domain.TipoBebida, Precio: 600, Disponible: true},
			},
		}

		resp, err := svc.GetMenuDia(ctx, 1, fecha, "almuerzo")

		require.NoError(t, err)
		assert.Equal(t, "2026-09-10", resp.Fecha)
		assert.Equal(t, "almuerzo", resp.Turno)
		require.Len(t, resp.Platos, 1)
		require.Len(t, resp.Bebidas, 1)
		assert.Empty(t, resp.Postres)
	})

	t.Run("menu vacio es respuesta valida", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		resp, err := svc.GetMenuDia(ctx, 1, fecha, "cena")

		require.NoError(t, err)
		assert.Empty(t, resp.Platos)
		assert.Empty(t, resp.Bebidas)
		assert.Empty(t, resp.Postres)
	})

	t.Run("turno invalido", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.GetMenuDia(ctx, 1, fecha, "brunch")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("sede inexistente", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.GetMenuDia(ctx, 99, fecha, "almuerzo")

		assert.ErrorIs(t, err, ErrSedeNotFound)
	})
}

package confirmar_pago

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	carritoStore "github.com/ucc-comedor/ComedorService/internal/infra/carrito"
	reservaRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/reserva"
	"github.com/ucc-comedor/ComedorService/internal/integrations/backoffice"
)

type fakeCarritoStore struct {
	carritos map[string]*domain.Carrito
	deleted  []string
}

func (f *fakeCarritoStore) Get(ctx context.Context, id string) (*domain.Carrito, error) {
	c, ok := f.carritos[id]
	if !ok {
		return nil, carritoStore.ErrCarritoNotFound
	}
	return c, nil
}

func (f *fakeCarritoStore) Delete(ctx context.Context, id string) error {
	delete(f.carritos, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type finalizacion struct {
	reservaID int64
	items     []domain.ItemPedido
	total     float64
	metodo    domain.MetodoPago
}

type fakeReservaRepo struct {
	reservas     map[int64]*domain.Reserva
	finalizadas  []finalizacion
	finalizarErr error
}

func (f *fakeReservaRepo) GetByID(ctx context.Context, id int64) (*domain.Reserva, error) {
	r, ok := f.reservas[id]
	if !ok {
		return nil, reservaRepo.ErrReservaNotFound
	}
	return r, nil
}

func (f *fakeReservaRepo) Finalizar(ctx context.Context, id int64, items []domain.ItemPedido, total float64, metodo domain.MetodoPago) error {
	if f.finalizarErr != nil {
		return f.finalizarErr
	}
	f.finalizadas = append(f.finalizadas, finalizacion{id, items, total, metodo})
	return nil
}

type fakeBackoffice struct {
	usuario *backoffice.Usuario
	err     error
}

func (f *fakeBackoffice) GetUsuarioWithGracefulDegradation(ctx context.Context, userID int64) (*backoffice.Usuario, error) {
	return f.usuario, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func carritoConItems() *domain.Carrito {
	return &domain.Carrito{
		ID:        "abc123",
		ReservaID: 10,
		Items: []domain.ItemPedido{
			{ConsumibleID: 1, Nombre: "Milanesa con puré", Tipo: "plato", PrecioUnitario: 1800, Cantidad: 2},
			{ConsumibleID: 2, Nombre: "Limonada", Tipo: "bebida", PrecioUnitario: 600, Cantidad: 1},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newFixture(reserva *domain.Reserva, bo *fakeBackoffice) (*UseCase, *fakeCarritoStore, *fakeReservaRepo) {
	carritos := &fakeCarritoStore{carritos: map[string]*domain.Carrito{"abc123": carritoConItems()}}
	reservas := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{}}
	if reserva != nil {
		reservas.reservas[reserva.ID] = reserva
	}
	if bo == nil {
		bo = &fakeBackoffice{}
	}
	uc := NewUseCase(carritos, reservas, bo, fakeTxManager{}, 500, nopLogger{})
	return uc, carritos, reservas
}

func activa() *domain.Reserva {
	return &domain.Reserva{ID: 10, UserID: 77, Estado: domain.StatusActiva, Total: 500}
}

func TestExecute_EfectivoTwoPhase(t *testing.T) {
	ctx := context.Background()
	uc, carritos, reservas := newFixture(activa(), nil)

	// Первый шаг: только расклад сумм, ничего не финализируется
	resp, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "efectivo"})
	require.NoError(t, err)
	assert.True(t, resp.RequiereConfirmacion)
	assert.False(t, resp.Finalizada)
	assert.InDelta(t, 4200.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 3700.0, resp.MontoACobrar, 0.001) // 4200 - 500
	assert.Empty(t, reservas.finalizadas)
	assert.Empty(t, carritos.deleted)

	// Второй шаг: финализация со снапшотом каррито
	resp, err = uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "efectivo", Confirmado: true})
	require.NoError(t, err)
	assert.True(t, resp.Finalizada)
	assert.False(t, resp.RequiereConfirmacion)

	require.Len(t, reservas.finalizadas, 1)
	fin := reservas.finalizadas[0]
	assert.Equal(t, int64(10), fin.reservaID)
	assert.Len(t, fin.items, 2)
	assert.InDelta(t, 4200.0, fin.total, 0.001)
	assert.Equal(t, domain.MetodoEfectivo, fin.metodo)
	assert.Equal(t, []string{"abc123"}, carritos.deleted)
}

func TestExecute_SaldoCuentaSinglePhase(t *testing.T) {
	ctx := context.Background()
	bo := &fakeBackoffice{usuario: &backoffice.Usuario{ID: 77, Saldo: 10000}}
	uc, carritos, reservas := newFixture(activa(), bo)

	resp, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "saldo_cuenta"})

	require.NoError(t, err)
	assert.True(t, resp.Finalizada)
	require.Len(t, reservas.finalizadas, 1)
	assert.Len(t, carritos.deleted, 1)
}

func TestExecute_SaldoInsuficiente(t *testing.T) {
	bo := &fakeBackoffice{usuario: &backoffice.Usuario{ID: 77, Saldo: 100}}
	uc, _, reservas := newFixture(activa(), bo)

	_, err := uc.Execute(context.Background(), &Request{CarritoID: "abc123", MetodoPago: "saldo_cuenta"})

	assert.ErrorIs(t, err, ErrSaldoInsuficiente)
	assert.Empty(t, reservas.finalizadas)
}

func TestExecute_BackofficeDegradedStillFinalizes(t *testing.T) {
	bo := &fakeBackoffice{err: backoffice.ErrServiceDegraded}
	uc, _, reservas := newFixture(activa(), bo)

	resp, err := uc.Execute(context.Background(), &Request{CarritoID: "abc123", MetodoPago: "saldo_cuenta"})

	require.NoError(t, err)
	assert.True(t, resp.Finalizada)
	assert.Len(t, reservas.finalizadas, 1)
}

func TestExecute_MontoNegativoSinClamp(t *testing.T) {
	// Каррито дешевле депозита: monto отрицательный, кассир возвращает сдачу
	uc, carritos, _ := newFixture(activa(), nil)
	carritos.carritos["abc123"].Items = []domain.ItemPedido{
		{ConsumibleID: 2, Nombre: "Limonada", Tipo: "bebida", PrecioUnitario: 300, Cantidad: 1},
	}

	resp, err := uc.Execute(context.Background(), &Request{CarritoID: "abc123", MetodoPago: "efectivo"})

	require.NoError(t, err)
	assert.InDelta(t, -200.0, resp.MontoACobrar, 0.001)
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("carrito inexistente", func(t *testing.T) {
		uc, _, _ := newFixture(activa(), nil)
		_, err := uc.Execute(ctx, &Request{CarritoID: "nope", MetodoPago: "efectivo"})
		assert.ErrorIs(t, err, ErrCarritoNotFound)
	})

	t.Run("metodo desconocido", func(t *testing.T) {
		uc, _, _ := newFixture(activa(), nil)
		_, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "tarjeta"})
		assert.ErrorIs(t, err, ErrInvalidMetodoPago)
	})

	t.Run("reserva cancelada", func(t *testing.T) {
		cancelada := activa()
		cancelada.Estado = domain.StatusCancelada
		uc, _, reservas := newFixture(cancelada, nil)
		_, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "efectivo", Confirmado: true})
		assert.ErrorIs(t, err, ErrReservaNotFinalizable)
		assert.Empty(t, reservas.finalizadas)
	})

	t.Run("reserva desaparecida", func(t *testing.T) {
		uc, _, _ := newFixture(nil, nil)
		_, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "efectivo"})
		assert.ErrorIs(t, err, ErrReservaNotFound)
	})

	t.Run("transicion perdida en el update", func(t *testing.T) {
		uc, _, reservas := newFixture(activa(), nil)
		reservas.finalizarErr = reservaRepo.ErrNoTransition
		_, err := uc.Execute(ctx, &Request{CarritoID: "abc123", MetodoPago: "saldo_cuenta"})
		assert.ErrorIs(t, err, ErrReservaNotFinalizable)
	})
}

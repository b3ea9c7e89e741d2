package create_reserva

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
	"github.com/ucc-comedor/ComedorService/pkg/types"
)

type fakeReservaRepo struct {
	existing []*domain.Reserva
	created  []*domain.Reserva
	nextID   int64
}

func (f *fakeReservaRepo) Create(ctx context.Context, r *domain.Reserva) (*domain.Reserva, error) {
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeReservaRepo) GetBySedeWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error) {
	// Та же фильтрация статусов, что и в настоящем репозитории
	out := make([]*domain.Reserva, 0)
	for _, r := range f.existing {
		if filter.Estado != nil && r.Estado != *filter.Estado {
			continue
		}
		if filter.Estado == nil && !filter.IncluirBajas &&
			(r.Estado == domain.StatusCancelada || r.Estado == domain.StatusAusente) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

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
	counts   map[string]int
	released []string
}

func (f *fakeOccupancy) Reserve(ctx context.Context, slotID string, capacidad int) (bool, error) {
	if f.counts[slotID]+1 > capacidad {
		return false, nil
	}
	f.counts[slotID]++
	return true, nil
}

func (f *fakeOccupancy) Release(ctx context.Context, slotID string) error {
	f.released = append(f.released, slotID)
	if f.counts[slotID] > 0 {
		f.counts[slotID]--
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(repo *fakeReservaRepo, sedes *fakeSedeRepo, occ *fakeOccupancy, now time.Time) *UseCase {
	uc := NewUseCase(repo, sedes, occ, fakeTxManager{}, 500, 14, 60, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:     77,
		SedeID:     1,
		Fecha:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Turno:      "almuerzo",
		SlotInicio: types.TimeString("12:00"),
	}
}

func TestExecute_CreatesActivaReserva(t *testing.T) {
	repo := &fakeReservaRepo{}
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 50}}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, sedes, occ, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "ACTIVA", resp.Estado)
	assert.Equal(t, "1-2026-09-10-almuerzo-0", resp.SlotID)
	assert.Equal(t, "12:00", resp.SlotInicio)
	assert.Equal(t, "13:00", resp.SlotFin)
	assert.InDelta(t, 500.0, resp.Total, 0.001)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].Items)
	assert.Equal(t, 1, occ.counts["1-2026-09-10-almuerzo-0"])
}

func TestExecute_SlotFull(t *testing.T) {
	repo := &fakeReservaRepo{}
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 1}}}
	occ := &fakeOccupancy{counts: map[string]int{"1-2026-09-10-almuerzo-0": 1}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, sedes, occ, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_DatabaseRecheckRollsBackTracker(t *testing.T) {
	// Трекер пуст, но в БД слот уже заполнен: инкремент должен откатиться
	repo := &fakeReservaRepo{existing: []*domain.Reserva{
		{ID: 1, SlotID: "1-2026-09-10-almuerzo-0", Estado: domain.StatusActiva},
	}}
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 1}}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, sedes, occ, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
	assert.Equal(t, []string{"1-2026-09-10-almuerzo-0"}, occ.released)
}

func TestExecute_CanceladaDoesNotOcupaCupo(t *testing.T) {
	repo := &fakeReservaRepo{existing: []*domain.Reserva{
		{ID: 1, SlotID: "1-2026-09-10-almuerzo-0", Estado: domain.StatusCancelada},
	}}
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 1}}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, sedes, occ, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestExecute_AusenteSigueOcupandoCupo(t *testing.T) {
	// Неявка не освобождает место: пересчет по БД должен её видеть
	repo := &fakeReservaRepo{existing: []*domain.Reserva{
		{ID: 1, SlotID: "1-2026-09-10-almuerzo-0", Estado: domain.StatusAusente},
	}}
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 1}}}
	occ := &fakeOccupancy{counts: map[string]int{}}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, sedes, occ, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_Rejections(t *testing.T) {
	sedes := &fakeSedeRepo{sedes: map[int64]*domain.Sede{1: {ID: 1, Capacidad: 10}}}
	now := time.Date(2026, 9, 10, 11, 0, 0, 0, time.UTC)

	newUC := func() *UseCase {
		return newUseCase(&fakeReservaRepo{}, sedes, &fakeOccupancy{counts: map[string]int{}}, now)
	}

	t.Run("turno invalido", func(t *testing.T) {
		req := validRequest()
		req.Turno = "brunch"
		_, err := newUC().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTurno)
	})

	t.Run("inicio fuera de la grilla", func(t *testing.T) {
		req := validRequest()
		req.SlotInicio = types.TimeString("12:30")
		_, err := newUC().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("slot ya comenzado", func(t *testing.T) {
		// Сегодня в 12:00 нельзя резервировать слот 12:00
		late := newUseCase(&fakeReservaRepo{}, sedes, &fakeOccupancy{counts: map[string]int{}},
			time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC))
		_, err := late.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotAlreadyStarted)
	})

	t.Run("sede inexistente", func(t *testing.T) {
		req := validRequest()
		req.SedeID = 404
		_, err := newUC().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSedeNotFound)
	})

	t.Run("fecha pasada", func(t *testing.T) {
		req := validRequest()
		req.Fecha = time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
		_, err := newUC().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
)

// UseCase use case получения доступных слотов sede на дату
type UseCase struct {
	sedeRepo         SedeRepository
	occupancy        OccupancyTracker
	timeProvider     TimeProvider
	diasAnticipacion int
	duracionSlotMin  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sedeRepo SedeRepository,
	occupancy OccupancyTracker,
	diasAnticipacion int,
	duracionSlotMin int,
	logger Logger,
) *UseCase {
	return &UseCase{
		sedeRepo:         sedeRepo,
		occupancy:        occupancy,
		timeProvider:     &RealTimeProvider{},
		diasAnticipacion: diasAnticipacion,
		duracionSlotMin:  duracionSlotMin,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Слоты генерируются детерминированно из сетки turnos и вместимости sede,
// занятость читается из трекера. Слот доступен, пока есть места
// и его начало строго в будущем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: sede=%d, fecha=%s, turno=%v",
		req.SedeID, req.Fecha.Format(domain.DateFormat), req.Turno)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем список turnos
	turnos := domain.Turnos
	if req.Turno != nil {
		turno, ok := domain.ParseTurno(*req.Turno)
		if !ok {
			uc.logger.Warn("GetAvailableSlots: invalid turno=%s", *req.Turno)
			return nil, ErrInvalidTurno
		}
		turnos = []domain.Turno{turno}
	}

	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Fecha, now, uc.diasAnticipacion); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем sede (вместимость нужна для генерации слотов)
	sede, err := uc.sedeRepo.GetByID(ctx, req.SedeID)
	if err != nil {
		if errors.Is(err, sedeRepo.ErrSedeNotFound) {
			uc.logger.Warn("GetAvailableSlots: sede id=%d not found", req.SedeID)
			return nil, ErrSedeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get sede id=%d: %v", req.SedeID, err)
		return nil, fmt.Errorf("%w: failed to get sede: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты и читаем занятость каждого
	slots := make([]Slot, 0)

	for _, turno := range turnos {
		generated := domain.GenerarSlots(sede.ID, req.Fecha, turno, sede.Capacidad, uc.duracionSlotMin)

		for _, ts := range generated {
			ocupados, err := uc.occupancy.GetCount(ctx, ts.ID)
			if err != nil {
				uc.logger.Error("GetAvailableSlots: failed to get occupancy for slot %s: %v", ts.ID, err)
				return nil, fmt.Errorf("%w: failed to get occupancy: %v", ErrInternal, err)
			}

			disponibles := ts.Capacidad - ocupados
			if disponibles < 0 {
				disponibles = 0
			}

			slots = append(slots, Slot{
				ID:          ts.ID,
				Turno:       string(ts.Turno),
				Inicio:      ts.Inicio.String(),
				Fin:         ts.Fin.String(),
				Capacidad:   ts.Capacidad,
				Ocupados:    ocupados,
				Disponibles: disponibles,
				Disponible:  disponibles > 0 && ts.Comienzo().After(now),
			})
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for sede=%d, fecha=%s",
		len(slots), req.SedeID, req.Fecha.Format(domain.DateFormat))

	return &Response{
		SedeID: req.SedeID,
		Fecha:  req.Fecha.Format(domain.DateFormat),
		Slots:  slots,
	}, nil
}

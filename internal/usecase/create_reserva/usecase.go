package create_reserva

import (
	"context"
	"errors"
	"fmt"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
)

// UseCase use case создания резервации
type UseCase struct {
	reservaRepo      ReservaRepository
	sedeRepo         SedeRepository
	occupancy        OccupancyTracker
	txManager        TransactionManager
	timeProvider     TimeProvider
	costoReserva     float64
	diasAnticipacion int
	duracionSlotMin  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservaRepo ReservaRepository,
	sedeRepo SedeRepository,
	occupancy OccupancyTracker,
	txManager TransactionManager,
	costoReserva float64,
	diasAnticipacion int,
	duracionSlotMin int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservaRepo:      reservaRepo,
		sedeRepo:         sedeRepo,
		occupancy:        occupancy,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		costoReserva:     costoReserva,
		diasAnticipacion: diasAnticipacion,
		duracionSlotMin:  duracionSlotMin,
		logger:           logger,
	}
}

// Execute выполняет use case создания резервации.
// Занятость слота контролируется в два рубежа: атомарный инкремент
// в трекере отсекает гонку между инстансами, пересчет по БД внутри
// сериализуемой транзакции страхует от дрейфа счетчика.
// При любой ошибке после инкремента место возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReserva: user=%d, sede=%d, fecha=%s, turno=%s, inicio=%s",
		req.UserID, req.SedeID, req.Fecha.Format(domain.DateFormat), req.Turno, req.SlotInicio)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReserva: validation failed: %v", err)
		return nil, err
	}

	turno, ok := domain.ParseTurno(req.Turno)
	if !ok {
		uc.logger.Warn("CreateReserva: invalid turno=%s", req.Turno)
		return nil, ErrInvalidTurno
	}

	now := uc.timeProvider.Now()

	// 2. Валидация даты
	if err := validateDate(req.Fecha, now, uc.diasAnticipacion); err != nil {
		uc.logger.Warn("CreateReserva: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем sede
	sede, err := uc.sedeRepo.GetByID(ctx, req.SedeID)
	if err != nil {
		if errors.Is(err, sedeRepo.ErrSedeNotFound) {
			uc.logger.Warn("CreateReserva: sede id=%d not found", req.SedeID)
			return nil, ErrSedeNotFound
		}
		uc.logger.Error("CreateReserva: failed to get sede id=%d: %v", req.SedeID, err)
		return nil, fmt.Errorf("%w: failed to get sede: %v", ErrInternal, err)
	}

	// 4. Находим слот по времени начала среди детерминированно
	// сгенерированных слотов turno
	slot, ok := domain.BuscarSlot(sede.ID, req.Fecha, turno, sede.Capacidad, uc.duracionSlotMin, req.SlotInicio)
	if !ok {
		uc.logger.Warn("CreateReserva: no slot with inicio=%s in turno=%s", req.SlotInicio, turno)
		return nil, ErrInvalidSlot
	}

	// 5. Слот должен начинаться строго в будущем
	if !slot.Comienzo().After(now) {
		uc.logger.Warn("CreateReserva: slot %s already started", slot.ID)
		return nil, ErrSlotAlreadyStarted
	}

	// 6. Занимаем место в трекере
	reserved, err := uc.occupancy.Reserve(ctx, slot.ID, slot.Capacidad)
	if err != nil {
		uc.logger.Error("CreateReserva: occupancy reserve failed for slot %s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: occupancy reserve failed: %v", ErrInternal, err)
	}
	if !reserved {
		uc.logger.Warn("CreateReserva: slot %s is full", slot.ID)
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Reserva

	// 7. Создаем резервацию в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Пересчитываем занятость слота по БД с блокировкой (FOR UPDATE).
		// IncluirBajas, потому что AUSENTE продолжает занимать место;
		// отбор по OcupaCupo ниже
		filter := domain.ReservasFilter{
			SedeID:       req.SedeID,
			Fecha:        &req.Fecha,
			Turno:        &turno,
			IncluirBajas: true,
		}

		reservas, err := uc.reservaRepo.GetBySedeWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservas: %v", ErrInternal, err)
		}

		ocupados := 0
		for _, r := range reservas {
			if r.SlotID == slot.ID && r.OcupaCupo() {
				ocupados++
			}
		}

		if ocupados >= slot.Capacidad {
			uc.logger.Warn("CreateReserva: slot %s full by database count, %d/%d",
				slot.ID, ocupados, slot.Capacidad)
			return ErrSlotNotAvailable
		}

		// 7.2. Сохраняем резервацию
		reserva := &domain.Reserva{
			UserID:     req.UserID,
			SedeID:     req.SedeID,
			Fecha:      req.Fecha,
			Turno:      turno,
			SlotID:     slot.ID,
			SlotInicio: slot.Inicio,
			SlotFin:    slot.Fin,
			Estado:     domain.StatusActiva,
			Items:      make([]domain.ItemPedido, 0),
			Total:      uc.costoReserva,
		}

		created, err := uc.reservaRepo.Create(txCtx, reserva)
		if err != nil {
			return fmt.Errorf("%w: failed to create reserva: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Возвращаем место, занятое в трекере
		if releaseErr := uc.occupancy.Release(ctx, slot.ID); releaseErr != nil {
			uc.logger.Error("CreateReserva: failed to release slot %s after error: %v", slot.ID, releaseErr)
		}
		return nil, err
	}

	uc.logger.Info("CreateReserva: successfully created reserva id=%d, slot=%s", result.ID, result.SlotID)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		SedeID:     result.SedeID,
		Fecha:      result.Fecha.Format(domain.DateFormat),
		Turno:      string(result.Turno),
		SlotID:     result.SlotID,
		SlotInicio: result.SlotInicio.String(),
		SlotFin:    result.SlotFin.String(),
		Estado:     string(result.Estado),
		Total:      result.Total,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

package reservas

import (
	"context"
	"errors"
	"fmt"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	reservaRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/reserva"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

// Service сервис для работы с резервациями
type Service struct {
	reservaRepo ReservaRepository
	occupancy   OccupancyTracker
	timeProv    TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservaRepo ReservaRepository,
	occupancy OccupancyTracker,
	timeProv TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservaRepo: reservaRepo,
		occupancy:   occupancy,
		timeProv:    timeProv,
		logger:      logger,
	}
}

// GetByID получает резервацию по ID
// Пользователь может видеть только свою резервацию
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservaResponse, error) {
	s.logger.Info("GetByID: fetching reserva id=%d for user=%d", id, userID)

	reserva, err := s.reservaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("GetByID: reserva id=%d not found", id)
			return nil, ErrReservaNotFound
		}
		s.logger.Error("GetByID: repository error for reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reserva.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reserva id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReserva(reserva), nil
}

// GetUserReservas получает историю резерваций пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservas(ctx context.Context, req *models.GetUserReservasRequest) (*models.ReservaListResponse, error) {
	s.logger.Info("GetUserReservas: fetching reservas for user=%d, estado=%v", req.UserID, req.Estado)

	var domainEstado *domain.ReservaStatus
	if req.Estado != nil {
		estado, err := models.ToDomainReservaStatus(*req.Estado)
		if err != nil {
			s.logger.Warn("GetUserReservas: invalid estado=%s for user=%d", *req.Estado, req.UserID)
			return nil, fmt.Errorf("%w: invalid estado", ErrInvalidInput)
		}
		domainEstado = &estado
	}

	reservas, err := s.reservaRepo.GetByUserID(ctx, req.UserID, domainEstado)
	if err != nil {
		s.logger.Error("GetUserReservas: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservas - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservas: successfully fetched %d reservas for user=%d", len(reservas), req.UserID)
	return models.FromDomainReservaList(reservas), nil
}

// GetSedeReservas получает резервации sede с гибкой фильтрацией.
// Используется кассирской стороной: список на дату, на turno, по статусу
func (s *Service) GetSedeReservas(ctx context.Context, req *models.GetSedeReservasRequest) (*models.ReservaListResponse, error) {
	s.logger.Info("GetSedeReservas: fetching reservas for sede=%d", req.SedeID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSedeReservas: invalid filter for sede=%d: %v", req.SedeID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservas, err := s.reservaRepo.GetBySedeWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSedeReservas: repository error for sede=%d: %v", req.SedeID, err)
		return nil, fmt.Errorf("%w: GetSedeReservas - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSedeReservas: successfully fetched %d reservas for sede=%d", len(reservas), req.SedeID)
	return models.FromDomainReservaList(reservas), nil
}

// Cancel отменяет резервацию владельца.
// Разрешено только из статуса ACTIVA и строго до начала слота;
// после отмены место в слоте освобождается
func (s *Service) Cancel(ctx context.Context, reservaID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling reserva id=%d by user=%d", reservaID, userID)

	reserva, err := s.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("Cancel: reserva id=%d not found", reservaID)
			return ErrReservaNotFound
		}
		s.logger.Error("Cancel: repository error for reserva id=%d: %v", reservaID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if reserva.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reserva id=%d", userID, reservaID)
		return ErrAccessDenied
	}

	if !reserva.PuedeCancelarse(s.timeProv.Now()) {
		s.logger.Warn("Cancel: reserva id=%d cannot be cancelled, estado=%s, slot=%s", reservaID, reserva.Estado, reserva.SlotID)
		return ErrCannotCancel
	}

	if err := s.reservaRepo.Cancel(ctx, reservaID); err != nil {
		// Резервация успела сменить статус между проверкой и UPDATE,
		// место в слоте не освобождаем
		if errors.Is(err, reservaRepo.ErrNoTransition) {
			s.logger.Warn("Cancel: reserva id=%d left ACTIVA before cancel could apply", reservaID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reserva id=%d: %v", reservaID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отмена зафиксирована в БД; расхождение счетчика при ошибке Redis
	// разрешится по TTL ключа, поэтому запрос не проваливаем
	if err := s.occupancy.Release(ctx, reserva.SlotID); err != nil {
		s.logger.Error("Cancel: failed to release slot %s for reserva id=%d: %v", reserva.SlotID, reservaID, err)
	}

	s.logger.Info("Cancel: successfully cancelled reserva id=%d", reservaID)
	return nil
}

// MarcarAusente помечает резервацию как неявку по событию из backoffice.
// Переход только из ACTIVA; место в слоте не освобождается.
// Повторные и устаревшие события не считаются ошибкой
func (s *Service) MarcarAusente(ctx context.Context, reservaID int64) error {
	s.logger.Info("MarcarAusente: marking reserva id=%d as AUSENTE", reservaID)

	if err := s.reservaRepo.MarcarAusente(ctx, reservaID); err != nil {
		if errors.Is(err, reservaRepo.ErrNoTransition) {
			s.logger.Warn("MarcarAusente: reserva id=%d not in ACTIVA or not found, event ignored", reservaID)
			return nil
		}
		s.logger.Error("MarcarAusente: repository error for reserva id=%d: %v", reservaID, err)
		return fmt.Errorf("%w: MarcarAusente - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarcarAusente: reserva id=%d marked as AUSENTE", reservaID)
	return nil
}

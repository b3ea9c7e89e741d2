package catalogo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
	"github.com/ucc-comedor/ComedorService/internal/service/catalogo/models"
)

// Service сервис для чтения справочных данных столовой:
// sedes, каталог consumibles и недельная сетка меню.
// Данные ведет внешняя сторона, сервис их не изменяет
type Service struct {
	sedeRepo       SedeRepository
	consumibleRepo ConsumibleRepository
	menuRepo       MenuRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	sedeRepo SedeRepository,
	consumibleRepo ConsumibleRepository,
	menuRepo MenuRepository,
	logger Logger,
) *Service {
	return &Service{
		sedeRepo:       sedeRepo,
		consumibleRepo: consumibleRepo,
		menuRepo:       menuRepo,
		logger:         logger,
	}
}

// ListSedes получает все sedes
func (s *Service) ListSedes(ctx context.Context) (*models.SedeListResponse, error) {
	sedes, err := s.sedeRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListSedes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSedes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSedeList(sedes), nil
}

// GetSede получает sede по ID
func (s *Service) GetSede(ctx context.Context, id int64) (*models.SedeResponse, error) {
	sede, err := s.sedeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sedeRepo.ErrSedeNotFound) {
			s.logger.Warn("GetSede: sede id=%d not found", id)
			return nil, ErrSedeNotFound
		}
		s.logger.Error("GetSede: repository error for sede id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSede - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSede(sede), nil
}

// ListConsumibles получает каталог consumibles.
// Опционально фильтрует по типу (plato, bebida, postre);
// недоступные позиции возвращаются только при includeUnavailable
func (s *Service) ListConsumibles(ctx context.Context, tipo *string, includeUnavailable bool) (*models.ConsumibleListResponse, error) {
	var domainTipo *domain.TipoConsumible
	if tipo != nil {
		parsed, ok := domain.ParseTipoConsumible(*tipo)
		if !ok {
			s.logger.Warn("ListConsumibles: invalid tipo=%s", *tipo)
			return nil, fmt.Errorf("%w: invalid tipo", ErrInvalidInput)
		}
		domainTipo = &parsed
	}

	consumibles, err := s.consumibleRepo.GetAll(ctx, domainTipo, includeUnavailable)
	if err != nil {
		s.logger.Error("ListConsumibles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConsumibles - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConsumibleList(consumibles), nil
}

// GetMenuDia получает меню sede на дату и turno.
// Проверяет существование sede; пустое меню - валидный ответ
func (s *Service) GetMenuDia(ctx context.Context, sedeID int64, fecha time.Time, turnoStr string) (*models.MenuDiaResponse, error) {
	turno, ok := domain.ParseTurno(turnoStr)
	if !ok {
		s.logger.Warn("GetMenuDia: invalid turno=%s for sede=%d", turnoStr, sedeID)
		return nil, fmt.Errorf("%w: invalid turno", ErrInvalidInput)
	}

	if _, err := s.sedeRepo.GetByID(ctx, sedeID); err != nil {
		if errors.Is(err, sedeRepo.ErrSedeNotFound) {
			s.logger.Warn("GetMenuDia: sede id=%d not found", sedeID)
			return nil, ErrSedeNotFound
		}
		s.logger.Error("GetMenuDia: repository error for sede id=%d: %v", sedeID, err)
		return nil, fmt.Errorf("%w: GetMenuDia - repository error: %v", ErrInternal, err)
	}

	menuDia, err := s.menuRepo.GetMenuDia(ctx, sedeID, fecha, turno)
	if err != nil {
		s.logger.Error("GetMenuDia: repository error for sede=%d fecha=%s turno=%s: %v",
			sedeID, fecha.Format(domain.DateFormat), turno, err)
		return nil, fmt.Errorf("%w: GetMenuDia - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenuDia(menuDia), nil
}

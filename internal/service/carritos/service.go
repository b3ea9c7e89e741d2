package carritos

import (
	"context"
	"errors"
	"fmt"

	carritoStore "github.com/ucc-comedor/ComedorService/internal/infra/carrito"
	consumibleRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/consumible"
	reservaRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/reserva"
	"github.com/ucc-comedor/ComedorService/internal/service/carritos/models"
)

// Service сервис сборки каррито на кассе.
// Каррито открывается для конкретной резервации; позиции прайсуются
// снапшотом из каталога в момент добавления
type Service struct {
	store          CarritoStore
	reservaRepo    ReservaRepository
	consumibleRepo ConsumibleRepository
	timeProv       TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса каррито
func NewService(
	store CarritoStore,
	reservaRepo ReservaRepository,
	consumibleRepo ConsumibleRepository,
	timeProv TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		store:          store,
		reservaRepo:    reservaRepo,
		consumibleRepo: consumibleRepo,
		timeProv:       timeProv,
		logger:         logger,
	}
}

// Create открывает пустое каррито для резервации.
// Резервация должна быть в статусе, допускающем финализацию
func (s *Service) Create(ctx context.Context, reservaID int64) (*models.CarritoResponse, error) {
	s.logger.Info("CreateCarrito: opening carrito for reserva id=%d", reservaID)

	reserva, err := s.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("CreateCarrito: reserva id=%d not found", reservaID)
			return nil, ErrReservaNotFound
		}
		s.logger.Error("CreateCarrito: repository error for reserva id=%d: %v", reservaID, err)
		return nil, fmt.Errorf("%w: CreateCarrito - repository error: %v", ErrInternal, err)
	}

	if !reserva.PuedeFinalizarse() {
		s.logger.Warn("CreateCarrito: reserva id=%d in estado=%s cannot receive a carrito", reservaID, reserva.Estado)
		return nil, ErrReservaNotFinalizable
	}

	carrito, err := s.store.Create(ctx, reservaID, s.timeProv.Now())
	if err != nil {
		s.logger.Error("CreateCarrito: store error for reserva id=%d: %v", reservaID, err)
		return nil, fmt.Errorf("%w: CreateCarrito - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCarrito: carrito %s opened for reserva id=%d", carrito.ID, reservaID)
	return models.FromDomainCarrito(carrito), nil
}

// Get получает каррито по ID
func (s *Service) Get(ctx context.Context, id string) (*models.CarritoResponse, error) {
	carrito, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, carritoStore.ErrCarritoNotFound) {
			s.logger.Warn("GetCarrito: carrito %s not found", id)
			return nil, ErrCarritoNotFound
		}
		s.logger.Error("GetCarrito: store error for carrito %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCarrito - store error: %v", ErrInternal, err)
	}

	return models.FromDomainCarrito(carrito), nil
}

// AddItem добавляет единицу consumible в каррито.
// Цена и название фиксируются из каталога в момент добавления
func (s *Service) AddItem(ctx context.Context, carritoID string, consumibleID int64) (*models.CarritoResponse, error) {
	s.logger.Info("AddItem: carrito=%s, consumible=%d", carritoID, consumibleID)

	carrito, err := s.store.Get(ctx, carritoID)
	if err != nil {
		if errors.Is(err, carritoStore.ErrCarritoNotFound) {
			s.logger.Warn("AddItem: carrito %s not found", carritoID)
			return nil, ErrCarritoNotFound
		}
		s.logger.Error("AddItem: store error for carrito %s: %v", carritoID, err)
		return nil, fmt.Errorf("%w: AddItem - store error: %v", ErrInternal, err)
	}

	consumible, err := s.consumibleRepo.GetByID(ctx, consumibleID)
	if err != nil {
		if errors.Is(err, consumibleRepo.ErrConsumibleNotFound) {
			s.logger.Warn("AddItem: consumible id=%d not found", consumibleID)
			return nil, ErrConsumibleNotFound
		}
		s.logger.Error("AddItem: repository error for consumible id=%d: %v", consumibleID, err)
		return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
	}

	if !consumible.Disponible {
		s.logger.Warn("AddItem: consumible id=%d no disponible", consumibleID)
		return nil, ErrConsumibleNoDisponible
	}

	carrito.AgregarItem(consumible)
	carrito.UpdatedAt = s.timeProv.Now()

	if err := s.store.Save(ctx, carrito); err != nil {
		s.logger.Error("AddItem: failed to save carrito %s: %v", carritoID, err)
		return nil, fmt.Errorf("%w: AddItem - store error: %v", ErrInternal, err)
	}

	return models.FromDomainCarrito(carrito), nil
}

// RemoveItem убирает единицу consumible из каррито.
// Отсутствующая позиция - no-op, ошибкой не считается
func (s *Service) RemoveItem(ctx context.Context, carritoID string, consumibleID int64) (*models.CarritoResponse, error) {
	s.logger.Info("RemoveItem: carrito=%s, consumible=%d", carritoID, consumibleID)

	carrito, err := s.store.Get(ctx, carritoID)
	if err != nil {
		if errors.Is(err, carritoStore.ErrCarritoNotFound) {
			s.logger.Warn("RemoveItem: carrito %s not found", carritoID)
			return nil, ErrCarritoNotFound
		}
		s.logger.Error("RemoveItem: store error for carrito %s: %v", carritoID, err)
		return nil, fmt.Errorf("%w: RemoveItem - store error: %v", ErrInternal, err)
	}

	carrito.QuitarItem(consumibleID)
	carrito.UpdatedAt = s.timeProv.Now()

	if err := s.store.Save(ctx, carrito); err != nil {
		s.logger.Error("RemoveItem: failed to save carrito %s: %v", carritoID, err)
		return nil, fmt.Errorf("%w: RemoveItem - store error: %v", ErrInternal, err)
	}

	return models.FromDomainCarrito(carrito), nil
}

package create_reserva

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	Create(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error)
	GetBySedeWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error)
}

// SedeRepository интерфейс репозитория sedes
type SedeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sede, error)
}

// OccupancyTracker интерфейс трекера занятости слотов
type OccupancyTracker interface {
	Reserve(ctx context.Context, slotID string, capacidad int) (bool, error)
	Release(ctx context.Context, slotID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

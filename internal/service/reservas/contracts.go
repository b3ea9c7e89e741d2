package reservas

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	Create(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error)
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
	GetByUserID(ctx context.Context, userID int64, estado *domain.ReservaStatus) ([]*domain.Reserva, error)
	GetBySedeWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error)
	Cancel(ctx context.Context, id int64) error
	MarcarAusente(ctx context.Context, id int64) error
}

// OccupancyTracker интерфейс трекера занятости слотов
type OccupancyTracker interface {
	Release(ctx context.Context, slotID string) error
}

// TimeProvider источник текущего времени; в тестах подменяется фиксированным
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

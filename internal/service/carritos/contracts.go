package carritos

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// CarritoStore интерфейс хранилища каррито
type CarritoStore interface {
	Create(ctx context.Context, reservaID int64, now time.Time) (*domain.Carrito, error)
	Get(ctx context.Context, id string) (*domain.Carrito, error)
	Save(ctx context.Context, c *domain.Carrito) error
}

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
}

// ConsumibleRepository интерфейс репозитория consumibles
type ConsumibleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Consumible, error)
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

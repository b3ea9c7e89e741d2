package get_available_slots

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// SedeRepository интерфейс репозитория sedes
type SedeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sede, error)
}

// OccupancyTracker интерфейс трекера занятости слотов
type OccupancyTracker interface {
	GetCount(ctx context.Context, slotID string) (int, error)
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

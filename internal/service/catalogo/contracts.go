package catalogo

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// SedeRepository интерфейс репозитория sedes
type SedeRepository interface {
	GetAll(ctx context.Context) ([]*domain.Sede, error)
	GetByID(ctx context.Context, id int64) (*domain.Sede, error)
}

// ConsumibleRepository интерфейс репозитория consumibles
type ConsumibleRepository interface {
	GetAll(ctx context.Context, tipo *domain.TipoConsumible, includeUnavailable bool) ([]*domain.Consumible, error)
	GetByID(ctx context.Context, id int64) (*domain.Consumible, error)
}

// MenuRepository интерфейс репозитория недельной сетки меню
type MenuRepository interface {
	GetMenuDia(ctx context.Context, sedeID int64, fecha time.Time, turno domain.Turno) (*domain.MenuDia, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

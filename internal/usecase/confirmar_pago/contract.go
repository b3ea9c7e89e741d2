package confirmar_pago

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/internal/integrations/backoffice"
)

// CarritoStore интерфейс хранилища каррито
type CarritoStore interface {
	Get(ctx context.Context, id string) (*domain.Carrito, error)
	Delete(ctx context.Context, id string) error
}

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
	Finalizar(ctx context.Context, id int64, items []domain.ItemPedido, total float64, metodoPago domain.MetodoPago) error
}

// BackofficeClient интерфейс клиента backoffice
type BackofficeClient interface {
	GetUsuarioWithGracefulDegradation(ctx context.Context, userID int64) (*backoffice.Usuario, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

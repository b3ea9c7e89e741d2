package create_carrito

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/carritos/models"
)

type CarritoService interface {
	Create(ctx context.Context, reservaID int64) (*models.CarritoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

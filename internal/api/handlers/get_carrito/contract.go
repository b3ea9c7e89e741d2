package get_carrito

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/carritos/models"
)

type CarritoService interface {
	Get(ctx context.Context, id string) (*models.CarritoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

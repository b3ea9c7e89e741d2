package carrito_items

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/carritos/models"
)

type CarritoService interface {
	AddItem(ctx context.Context, carritoID string, consumibleID int64) (*models.CarritoResponse, error)
	RemoveItem(ctx context.Context, carritoID string, consumibleID int64) (*models.CarritoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

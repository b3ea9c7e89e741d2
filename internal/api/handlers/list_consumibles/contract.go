package list_consumibles

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/catalogo/models"
)

type CatalogoService interface {
	ListConsumibles(ctx context.Context, tipo *string, includeUnavailable bool) (*models.ConsumibleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_sedes

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/catalogo/models"
)

type CatalogoService interface {
	ListSedes(ctx context.Context) (*models.SedeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_sede

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/catalogo/models"
)

type CatalogoService interface {
	GetSede(ctx context.Context, id int64) (*models.SedeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_menu_dia

import (
	"context"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/service/catalogo/models"
)

type CatalogoService interface {
	GetMenuDia(ctx context.Context, sedeID int64, fecha time.Time, turno string) (*models.MenuDiaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

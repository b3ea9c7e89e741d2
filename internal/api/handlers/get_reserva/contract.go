package get_reserva

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

type ReservaService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.ReservaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

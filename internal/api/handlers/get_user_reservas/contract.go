package get_user_reservas

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

type ReservaService interface {
	GetUserReservas(ctx context.Context, req *models.GetUserReservasRequest) (*models.ReservaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

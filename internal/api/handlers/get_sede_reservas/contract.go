package get_sede_reservas

import (
	"context"

	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

type ReservaService interface {
	GetSedeReservas(ctx context.Context, req *models.GetSedeReservasRequest) (*models.ReservaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

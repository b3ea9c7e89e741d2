package create_reserva

import (
	"context"

	createReserva "github.com/ucc-comedor/ComedorService/internal/usecase/create_reserva"
)

type CreateReservaUseCase interface {
	Execute(ctx context.Context, req *createReserva.Request) (*createReserva.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

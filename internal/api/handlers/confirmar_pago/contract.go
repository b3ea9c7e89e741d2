package confirmar_pago

import (
	"context"

	confirmarPago "github.com/ucc-comedor/ComedorService/internal/usecase/confirmar_pago"
)

type ConfirmarPagoUseCase interface {
	Execute(ctx context.Context, req *confirmarPago.Request) (*confirmarPago.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

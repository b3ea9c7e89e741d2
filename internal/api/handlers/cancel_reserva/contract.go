package cancel_reserva

import "context"

type ReservaService interface {
	Cancel(ctx context.Context, reservaID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

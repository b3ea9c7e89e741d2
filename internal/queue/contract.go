package queue

import "context"

// MarcadorAusencias помечает резервацию как неявку.
// Реализуется сервисом резерваций
type MarcadorAusencias interface {
	MarcarAusente(ctx context.Context, reservaID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

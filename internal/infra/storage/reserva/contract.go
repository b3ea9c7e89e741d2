package reserva

import (
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

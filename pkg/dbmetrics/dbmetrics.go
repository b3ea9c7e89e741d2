// Package dbmetrics оборачивает *sql.DB, снимая метрики запросов,
// и дает единую точку получения executor'а с учетом транзакции в контексте
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/ucc-comedor/ComedorService/pkg/metrics"
)

// DBExecutor минимальный интерфейс выполнения запросов
// Реализуется *sql.DB, *sql.Tx и *dbmetrics.DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// ContextWithTx кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// TxFromContext возвращает транзакцию из контекста, если она есть
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor возвращает транзакцию из контекста либо переданный fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}

// DB обертка над *sql.DB с метриками
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

// Wrap оборачивает *sql.DB коллектором метрик
func Wrap(db *sql.DB, collector *metrics.Metrics) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)
	go wrapped.collectPoolStats(dbName, stopCh)
	return wrapped
}

func (w *DB) collectPoolStats(dbName string, stopCh <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := w.db.Stats()
			w.collector.SetDBPoolStats(dbName, stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

// ExecContext выполняет запрос с замером длительности
func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.db.ExecContext(ctx, query, args...)
	w.collector.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

// QueryContext выполняет запрос с замером длительности
func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.collector.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с замером длительности
// Ошибка выполнения всплывет при Scan, поэтому здесь метрика без err
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.collector.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию на нижележащем *sql.DB
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return w.db.BeginTx(ctx, opts)
}

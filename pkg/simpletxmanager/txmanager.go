// Package simpletxmanager вариант менеджера транзакций без метрик и ретраев
// Используется, когда метрики выключены и БД не обернута в dbmetrics.DB
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
)

// TransactionManager выполняет функции внутри сериализуемой транзакции
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций над *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.doOnce(ctx, nil, fn)
}

// DoSerializable выполняет fn внутри транзакции уровня SERIALIZABLE
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.doOnce(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) doOnce(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(dbmetrics.ContextWithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit tx: %w", err)
	}
	committed = true
	return nil
}

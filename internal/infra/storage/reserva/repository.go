package reserva

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
	"github.com/ucc-comedor/ComedorService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с резервациями
type Repository struct {
	db     DBExecutor
	logger Logger
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor, logger Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Create создает новую резервацию
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// При создании резервации с проверкой вместимости слота транзакция обязательна,
// чтобы исключить race condition между проверкой и вставкой.
func (r *Repository) Create(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	itemsJSON, err := json.Marshal(reserva.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal items: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"user_id",
			"sede_id",
			"fecha",
			"turno",
			"slot_id",
			"slot_inicio",
			"slot_fin",
			"estado",
			"items",
			"total",
		).
		Values(
			reserva.UserID,
			reserva.SedeID,
			reserva.Fecha,
			reserva.Turno,
			reserva.SlotID,
			reserva.SlotInicio,
			reserva.SlotFin,
			reserva.Estado,
			itemsJSON,
			reserva.Total,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reserva.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reserva.CreatedAt = createdAt.Time
	reserva.UpdatedAt = updatedAt.Time

	return reserva, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reserva, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservas().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		reserva    domain.Reserva
		estadoRaw  string
		itemsRaw   []byte
		metodoPago sql.NullString
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reserva.ID,
		&reserva.UserID,
		&reserva.SedeID,
		&reserva.Fecha,
		&reserva.Turno,
		&reserva.SlotID,
		&reserva.SlotInicio,
		&reserva.SlotFin,
		&estadoRaw,
		&itemsRaw,
		&reserva.Total,
		&metodoPago,
		&reserva.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reserva: %v", ErrScanRow, err)
	}

	if err := r.finishReserva(&reserva, estadoRaw, itemsRaw, metodoPago, createdAt, updatedAt); err != nil {
		return nil, err
	}

	return &reserva, nil
}

// GetByUserID получает список резерваций пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, estado *domain.ReservaStatus) ([]*domain.Reserva, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservas().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("fecha DESC, slot_inicio DESC")

	// Фильтрация по статусу, если указан
	if estado != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *estado})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservas(rows)
}

// GetBySedeWithFilter получает резервации sede с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Дате (Fecha) - опционально
// - Турно (Turno) - опционально
// - Статусу (Estado) - опционально
// - Включению отмененных и неявок (IncluirBajas)
//
// Если вызов происходит внутри транзакции и указана конкретная дата,
// добавляет FOR UPDATE - это путь usecase создания резервации,
// где строки слота должны быть заблокированы до вставки
func (r *Repository) GetBySedeWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservas().
		Where(squirrel.Eq{"sede_id": filter.SedeID})

	if filter.Fecha != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"fecha": *filter.Fecha})
	}

	if filter.Turno != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"turno": *filter.Turno})
	}

	// Фильтрация по статусу
	if filter.Estado != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *filter.Estado})
	} else if !filter.IncluirBajas {
		// Без явного статуса отмененные и неявки исключаются
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"estado": []string{
			string(domain.StatusCancelada),
			string(domain.StatusAusente),
		}})
	}

	if filter.Fecha != nil {
		// Для конкретной даты сортируем по началу слота
		selectBuilder = selectBuilder.OrderBy("slot_inicio ASC, id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("fecha DESC, slot_inicio DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Fecha != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySedeWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySedeWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservas(rows)
}

// Cancel отменяет резервацию: статус CANCELADA и отметка времени отмены.
// Переход разрешен только из ACTIVA, предикат в UPDATE защищает от гонки
// с параллельной финализацией кассиром
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusCancelada).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusActiva}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoTransition
	}

	return nil
}

// Finalizar закрывает резервацию после подтверждения оплаты кассиром:
// снапшот позиций каррито, итоговая сумма и метод оплаты.
// Переход разрешен только из ACTIVA или CONFIRMADA
func (r *Repository) Finalizar(ctx context.Context, id int64, items []domain.ItemPedido, total float64, metodoPago domain.MetodoPago) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: Finalizar - marshal items: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusFinalizada).
		Set("items", itemsJSON).
		Set("total", total).
		Set("metodo_pago", metodoPago).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": []string{
			string(domain.StatusActiva),
			string(domain.StatusConfirmada),
		}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Finalizar - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finalizar - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finalizar - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoTransition
	}

	return nil
}

// MarcarAusente помечает резервацию как неявку.
// Вызывается только консьюмером внешних событий; переход разрешен из ACTIVA
func (r *Repository) MarcarAusente(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusAusente).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusActiva}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarcarAusente - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarcarAusente - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarcarAusente - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoTransition
	}

	return nil
}

// selectReservas базовый SELECT со всеми колонками резервации
func selectReservas() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"sede_id",
		"fecha",
		"turno",
		"slot_id",
		"slot_inicio",
		"slot_fin",
		"estado",
		"items",
		"total",
		"metodo_pago",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("reservas")
}

// scanReservas сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservas(rows *sql.Rows) ([]*domain.Reserva, error) {
	reservas := make([]*domain.Reserva, 0)

	for rows.Next() {
		var (
			reserva    domain.Reserva
			estadoRaw  string
			itemsRaw   []byte
			metodoPago sql.NullString
			createdAt  sql.NullTime
			updatedAt  sql.NullTime
		)

		err := rows.Scan(
			&reserva.ID,
			&reserva.UserID,
			&reserva.SedeID,
			&reserva.Fecha,
			&reserva.Turno,
			&reserva.SlotID,
			&reserva.SlotInicio,
			&reserva.SlotFin,
			&estadoRaw,
			&itemsRaw,
			&reserva.Total,
			&metodoPago,
			&reserva.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservas - scan row: %v", ErrScanRow, err)
		}

		if err := r.finishReserva(&reserva, estadoRaw, itemsRaw, metodoPago, createdAt, updatedAt); err != nil {
			return nil, err
		}

		reservas = append(reservas, &reserva)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservas - rows error: %v", ErrScanRow, err)
	}

	return reservas, nil
}

// finishReserva достраивает доменную модель из сырых колонок:
// декодирует позиции заказа, нормализует статус, разворачивает NULL-поля.
// Неизвестный статус из старых записей приводится к ACTIVA с warning в лог
func (r *Repository) finishReserva(reserva *domain.Reserva, estadoRaw string, itemsRaw []byte, metodoPago sql.NullString, createdAt, updatedAt sql.NullTime) error {
	estado, migrated := domain.NormalizarReservaStatus(estadoRaw)
	if migrated {
		r.logger.Warn("reserva.repository: reserva %d has unknown estado %q, treating as %s", reserva.ID, estadoRaw, estado)
	}
	reserva.Estado = estado

	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &reserva.Items); err != nil {
			return fmt.Errorf("%w: finishReserva - unmarshal items for reserva %d: %v", ErrScanRow, reserva.ID, err)
		}
	}
	if reserva.Items == nil {
		reserva.Items = make([]domain.ItemPedido, 0)
	}

	if metodoPago.Valid {
		if metodo, ok := domain.ParseMetodoPago(metodoPago.String); ok {
			reserva.MetodoPago = &metodo
		}
	}

	reserva.CreatedAt = createdAt.Time
	reserva.UpdatedAt = updatedAt.Time

	return nil
}

package consumible

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
	"github.com/ucc-comedor/ComedorService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения справочника consumibles.
// Каталог ведет внешняя сторона (шеф), сервис резерваций использует его
// для прайсинга позиций каррито
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория consumibles
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает consumibles с опциональной фильтрацией по типу.
// Недоступные позиции включаются только при includeUnavailable = true
func (r *Repository) GetAll(ctx context.Context, tipo *domain.TipoConsumible, includeUnavailable bool) ([]*domain.Consumible, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectConsumibles().
		OrderBy("tipo ASC, nombre ASC")

	if tipo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tipo": *tipo})
	}
	if !includeUnavailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"disponible": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsumibles(rows)
}

// GetByID получает consumible по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Consumible, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectConsumibles().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Consumible
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Nombre,
		&c.Tipo,
		&c.Descripcion,
		&c.Precio,
		&c.Disponible,
		&c.Imagen,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConsumibleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consumible: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func selectConsumibles() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"nombre",
		"tipo",
		"descripcion",
		"precio",
		"disponible",
		"imagen",
		"created_at",
		"updated_at",
	).From("consumibles")
}

func scanConsumibles(rows *sql.Rows) ([]*domain.Consumible, error) {
	consumibles := make([]*domain.Consumible, 0)

	for rows.Next() {
		var c domain.Consumible
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.Nombre,
			&c.Tipo,
			&c.Descripcion,
			&c.Precio,
			&c.Disponible,
			&c.Imagen,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanConsumibles - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		consumibles = append(consumibles, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanConsumibles - rows error: %v", ErrScanRow, err)
	}

	return consumibles, nil
}

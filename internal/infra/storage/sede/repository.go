package sede

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
	"github.com/ucc-comedor/ComedorService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения справочника sedes.
// Данные принадлежат внешней стороне (управление комедорами),
// сервис резерваций их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория sedes
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все sedes, отсортированные по имени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Sede, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSedes().
		OrderBy("nombre ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sedes := make([]*domain.Sede, 0)

	for rows.Next() {
		var sede domain.Sede
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sede.ID,
			&sede.Nombre,
			&sede.Direccion,
			&sede.Capacidad,
			&sede.Imagen,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		sede.CreatedAt = createdAt.Time
		sede.UpdatedAt = updatedAt.Time

		sedes = append(sedes, &sede)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return sedes, nil
}

// GetByID получает sede по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sede, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSedes().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sede domain.Sede
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sede.ID,
		&sede.Nombre,
		&sede.Direccion,
		&sede.Capacidad,
		&sede.Imagen,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSedeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sede: %v", ErrScanRow, err)
	}

	sede.CreatedAt = createdAt.Time
	sede.UpdatedAt = updatedAt.Time

	return &sede, nil
}

func selectSedes() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"nombre",
		"direccion",
		"capacidad",
		"imagen",
		"created_at",
		"updated_at",
	).From("sedes")
}

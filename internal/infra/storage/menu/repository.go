package menu

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
	"github.com/ucc-comedor/ComedorService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения недельной сетки меню.
// Сетка хранится по ключу (sede_id, dia_semana, turno) и ведется шефом;
// сервис резолвит конкретную дату в день недели при чтении
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetMenuDia получает меню sede на конкретную дату и turno.
// Возвращает consumibles, разложенные по категориям; недоступные позиции
// каталога не включаются
func (r *Repository) GetMenuDia(ctx context.Context, sedeID int64, fecha time.Time, turno domain.Turno) (*domain.MenuDia, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.nombre",
		"c.tipo",
		"c.descripcion",
		"c.precio",
		"c.disponible",
		"c.imagen",
		"c.created_at",
		"c.updated_at",
	).
		From("menu_semanal m").
		Join("consumibles c ON c.id = m.consumible_id").
		Where(squirrel.Eq{
			"m.sede_id":    sedeID,
			"m.dia_semana": domain.DiaSemana(fecha),
			"m.turno":      turno,
			"c.disponible": true,
		}).
		OrderBy("c.tipo ASC, c.nombre ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMenuDia - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMenuDia - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	menuDia := &domain.MenuDia{
		SedeID:  sedeID,
		Fecha:   fecha,
		Turno:   turno,
		Platos:  make([]domain.Consumible, 0),
		Bebidas: make([]domain.Consumible, 0),
		Postres: make([]domain.Consumible, 0),
	}

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
			return nil, fmt.Errorf("%w: GetMenuDia - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		switch c.Tipo {
		case domain.TipoPlato:
			menuDia.Platos = append(menuDia.Platos, c)
		case domain.TipoBebida:
			menuDia.Bebidas = append(menuDia.Bebidas, c)
		case domain.TipoPostre:
			menuDia.Postres = append(menuDia.Postres, c)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMenuDia - rows error: %v", ErrScanRow, err)
	}

	return menuDia, nil
}

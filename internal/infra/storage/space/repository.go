package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/pkg/dbmetrics"
	"github.com/campusbook/CB-ReservationService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pqUniqueViolation = "23505"

// spaceColumns полный набор колонок таблицы spaces
var spaceColumns = []string{
	"id",
	"name",
	"description",
	"capacity",
	"space_type",
	"active",
	"deactivation_reason",
	"deleted",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с помещениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое помещение
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"name",
			"description",
			"capacity",
			"space_type",
			"active",
		).
		Values(
			space.Name,
			space.Description,
			space.Capacity,
			space.Type,
			space.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает помещение по ID.
// Возвращает и удалённые помещения — они остаются разрешимыми по id
// для исторических бронирований.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := r.scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// List получает все неудалённые помещения в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := r.scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет основные поля помещения.
// Удалённые помещения не обновляются.
func (r *Repository) Update(ctx context.Context, space *domain.Space) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("name", space.Name).
		Set("description", space.Description).
		Set("capacity", space.Capacity).
		Set("space_type", space.Type).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID, "deleted": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// SetActive активирует или деактивирует помещение.
// При деактивации сохраняется причина, при активации причина очищается.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("spaces").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false})

	if active {
		updateBuilder = updateBuilder.Set("deactivation_reason", nil)
	} else {
		updateBuilder = updateBuilder.Set("deactivation_reason", reason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// SoftDelete помечает помещение удалённым.
// Физического удаления нет — исторические бронирования продолжают
// ссылаться на запись.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("deleted", true).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSpace сканирует одну строку в помещение
func (r *Repository) scanSpace(row rowScanner) (*domain.Space, error) {
	var space domain.Space
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Description,
		&space.Capacity,
		&space.Type,
		&space.Active,
		&space.DeactivationReason,
		&space.Deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// isUniqueViolation проверяет нарушение уникального индекса по имени
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

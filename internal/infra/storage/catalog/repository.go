package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Уникальный индекс по LOWER(name)
const nameUniqueIndex = "services_name_lower_key"

var selectColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"name",
			"description",
			"price",
			"duration_minutes",
			"active",
		).
		Values(
			service.Name,
			service.Description,
			service.Price,
			service.DurationMinutes,
			service.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if pgerrors.IsUniqueViolation(err, nameUniqueIndex) {
		return nil, ErrNameTaken
	}
	if pgerrors.IsValueRejected(err) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return service, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	return service, nil
}

// ExistsByName проверяет, занято ли название (без учёта регистра)
// excludeID исключает саму услугу при переименовании
func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subquery := psqlbuilder.Select("1").
		From("services").
		Where(squirrel.Expr("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))))
	if excludeID != nil {
		subquery = subquery.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := subquery.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByName - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByName - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// List получает услуги, опционально только активные
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("services").
		OrderBy("name ASC")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// Update сохраняет все редактируемые поля услуги
// Изменение длительности сдвигает вычисляемый конец уже существующих записей
func (r *Repository) Update(ctx context.Context, service *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", service.Name).
		Set("description", service.Description).
		Set("price", service.Price).
		Set("duration_minutes", service.DurationMinutes).
		Set("active", service.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrServiceNotFound
	}
	if pgerrors.IsUniqueViolation(err, nameUniqueIndex) {
		return ErrNameTaken
	}
	if pgerrors.IsValueRejected(err) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// SetActive активирует или деактивирует услугу (мягкое удаление)
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

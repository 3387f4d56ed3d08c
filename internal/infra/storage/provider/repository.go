package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"work_start",
	"work_end",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий мастеров и их рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мастера
// Связи с услугами (ServiceIDs) пишутся отдельно через SetServices
func (r *Repository) Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("providers").
		Columns(
			"name",
			"phone",
			"email",
			"work_start",
			"work_end",
			"active",
		).
		Values(
			provider.Name,
			provider.Phone,
			provider.Email,
			provider.WorkStart,
			provider.WorkEnd,
			provider.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return provider, nil
}

// GetByID получает мастера вместе со списком услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	provider, err := r.getByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	serviceIDs, err := r.GetServiceIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	provider.ServiceIDs = serviceIDs

	return provider, nil
}

// GetByIDForUpdate получает мастера и блокирует его строку до конца транзакции
// Используется как мьютекс на расписание мастера: все записи к одному мастеру
// выполняются последовательно. Список услуг не загружается
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Provider, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("providers").
		Where(squirrel.Eq{"id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	provider, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %w", ErrScanRow, err)
	}

	return provider, nil
}

// List получает мастеров, опционально только активных
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("providers").
		OrderBy("name ASC", "id ASC")
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

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return providers, nil
}

// Update сохраняет все редактируемые поля мастера
func (r *Repository) Update(ctx context.Context, provider *domain.Provider) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("name", provider.Name).
		Set("phone", provider.Phone).
		Set("email", provider.Email).
		Set("work_start", provider.WorkStart).
		Set("work_end", provider.WorkEnd).
		Set("active", provider.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": provider.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&provider.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProviderNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// SetActive активирует или деактивирует мастера (мягкое удаление)
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
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
		return ErrProviderNotFound
	}

	return nil
}

// GetServiceIDs возвращает ID услуг, которые выполняет мастер
func (r *Repository) GetServiceIDs(ctx context.Context, providerID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id").
		From("provider_services").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	serviceIDs := make([]int64, 0)
	for rows.Next() {
		var serviceID int64
		if err := rows.Scan(&serviceID); err != nil {
			return nil, fmt.Errorf("%w: GetServiceIDs - scan service_id: %w", ErrScanRow, err)
		}
		serviceIDs = append(serviceIDs, serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - rows error: %w", ErrScanRow, err)
	}

	return serviceIDs, nil
}

// SetServices заменяет список услуг мастера
// Должен вызываться внутри транзакции
func (r *Repository) SetServices(ctx context.Context, providerID int64, serviceIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("provider_services").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetServices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetServices - execute delete: %w", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("provider_services").
		Columns("provider_id", "service_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(providerID, serviceID)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrUnknownService, err)
		}
		return fmt.Errorf("%w: SetServices - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*domain.Provider, error) {
	var provider domain.Provider

	err := row.Scan(
		&provider.ID,
		&provider.Name,
		&provider.Phone,
		&provider.Email,
		&provider.WorkStart,
		&provider.WorkEnd,
		&provider.Active,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &provider, nil
}

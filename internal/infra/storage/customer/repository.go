package customer

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

const emailUniqueConstraint = "customers_email_key"

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone").
		Values(customer.Name, customer.Email, customer.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.CreatedAt)
	if pgerrors.IsUniqueViolation(err, emailUniqueConstraint) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return customer, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "created_at").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %w", ErrScanRow, err)
	}

	return &customer, nil
}

// ExistsByEmail проверяет, зарегистрирован ли email
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("customers").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByEmail - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// ExistsByEmailExcluding проверяет, занят ли email другим клиентом
func (r *Repository) ExistsByEmailExcluding(ctx context.Context, email string, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("customers").
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.NotEq{"id": excludeID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByEmailExcluding - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByEmailExcluding - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Update сохраняет имя, email и телефон клиента
func (r *Repository) Update(ctx context.Context, customer *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("name", customer.Name).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Where(squirrel.Eq{"id": customer.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err, emailUniqueConstraint) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// List получает всех клиентов по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "created_at").
		From("customers").
		OrderBy("name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		customers = append(customers, &customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return customers, nil
}

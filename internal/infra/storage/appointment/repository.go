package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Колонки записи вместе с денормализованными данными из связанных таблиц
var selectColumns = []string{
	"a.id",
	"a.customer_id",
	"a.provider_id",
	"a.service_id",
	"a.start_at",
	"a.status",
	"a.note",
	"a.created_at",
	"a.updated_at",
	"c.name",
	"p.name",
	"s.name",
	"s.price",
	"s.duration_minutes",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id").
		Join("providers p ON p.id = a.provider_id").
		Join("services s ON s.id = a.service_id")
}

// Create сохраняет новую запись
// Денормализованные поля не пишутся: они заполняются вызывающим кодом
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"provider_id",
			"service_id",
			"start_at",
			"status",
			"note",
		).
		Values(
			appointment.CustomerID,
			appointment.ProviderID,
			appointment.ServiceID,
			appointment.Start,
			appointment.Status,
			appointment.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if pgerrors.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("%w: Create: %v", ErrInvalidReference, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает запись по ID и блокирует строку до конца транзакции
// Вне транзакции работает как GetByID
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().Where(squirrel.Eq{"a.id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByProviderAndDay получает все записи мастера, начинающиеся в [dayStart, dayEnd)
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка пересечений
// и последующая запись были атомарны
func (r *Repository) GetByProviderAndDay(ctx context.Context, providerID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().
		Where(squirrel.Eq{"a.provider_id": providerID}).
		Where(squirrel.GtOrEq{"a.start_at": dayStart}).
		Where(squirrel.Lt{"a.start_at": dayEnd}).
		OrderBy("a.start_at ASC", "a.id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// List получает записи по фильтру
// Сортировка: сначала ближайшие по времени начала
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments()

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.customer_id": *filter.CustomerID})
	}
	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.provider_id": *filter.ProviderID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_at": *filter.To})
	}

	query, args, err := selectBuilder.OrderBy("a.start_at ASC", "a.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update сохраняет изменяемые поля записи: время начала, статус и заметку
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("start_at", appointment.Start).
		Set("status", appointment.Status).
		Set("note", appointment.Note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAppointmentNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment

	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerID,
		&appointment.ProviderID,
		&appointment.ServiceID,
		&appointment.Start,
		&appointment.Status,
		&appointment.Note,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
		&appointment.CustomerName,
		&appointment.ProviderName,
		&appointment.ServiceName,
		&appointment.ServicePrice,
		&appointment.ServiceDurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

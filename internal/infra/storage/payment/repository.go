package payment

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

const appointmentUniqueConstraint = "payments_appointment_id_key"

// Repository репозиторий оплат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оплат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет оплату
// Нарушение уникальности appointment_id (параллельная оплата) возвращает ErrPaymentExists
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"appointment_id",
			"amount_charged",
			"method",
			"paid_at",
			"note",
		).
		Values(
			payment.AppointmentID,
			payment.AmountCharged,
			payment.Method,
			payment.PaidAt,
			payment.Note,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID)
	if pgerrors.IsUniqueViolation(err, appointmentUniqueConstraint) {
		return nil, ErrPaymentExists
	}
	if pgerrors.IsValueRejected(err) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return payment, nil
}

// ExistsByAppointmentID проверяет, есть ли оплата у записи
func (r *Repository) ExistsByAppointmentID(ctx context.Context, appointmentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByAppointmentID - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// GetByAppointmentID получает оплату записи
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"amount_charged",
		"method",
		"paid_at",
		"note",
	).
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	var payment domain.Payment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.AmountCharged,
		&payment.Method,
		&payment.PaidAt,
		&payment.Note,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - scan payment: %w", ErrScanRow, err)
	}

	return &payment, nil
}

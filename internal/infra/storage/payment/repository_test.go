package payment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	paidAt := time.Date(2099, 1, 1, 9, 40, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO payments \(appointment_id,amount_charged,method,paid_at,note\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs(int64(10), 35.0, "PIX", paidAt, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.Create(context.Background(), &domain.Payment{
		AppointmentID: 10,
		AmountCharged: 35,
		Method:        domain.MethodPix,
		PaidAt:        paidAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO payments`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "payments_appointment_id_key"})

	_, err := repo.Create(context.Background(), &domain.Payment{AppointmentID: 10, AmountCharged: 35, Method: domain.MethodCash})

	require.ErrorIs(t, err, ErrPaymentExists)
}

func TestRepository_Create_AmountRejected(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
	}{
		{name: "rounds to zero", code: "23514"},
		{name: "column overflow", code: "22003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectQuery(`INSERT INTO payments`).
				WillReturnError(&pq.Error{Code: tt.code})

			_, err := repo.Create(context.Background(), &domain.Payment{AppointmentID: 10, AmountCharged: 0.004, Method: domain.MethodCash})

			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestRepository_ExistsByAppointmentID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM payments WHERE appointment_id = \$1 \)`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByAppointmentID(context.Background(), 10)

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByAppointmentID(t *testing.T) {
	repo, mock := newRepo(t)
	paidAt := time.Date(2099, 1, 1, 9, 40, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, appointment_id, amount_charged, method, paid_at, note FROM payments WHERE appointment_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "amount_charged", "method", "paid_at", "note"}).
			AddRow(1, 10, []byte("35.00"), "CARTAO_DEBITO", paidAt, nil))

	got, err := repo.GetByAppointmentID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.MethodDebitCard, got.Method)
	assert.Equal(t, 35.0, got.AmountCharged)
}

func TestRepository_GetByAppointmentID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM payments`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "amount_charged", "method", "paid_at", "note"}))

	_, err := repo.GetByAppointmentID(context.Background(), 11)

	require.ErrorIs(t, err, ErrPaymentNotFound)
}

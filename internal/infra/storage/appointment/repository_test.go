package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

var columns = []string{
	"id", "customer_id", "provider_id", "service_id", "start_at", "status", "note",
	"created_at", "updated_at", "customer_name", "provider_name", "service_name",
	"price", "duration_minutes",
}

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func inTx(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := dbmetrics.New(db, nil, "test").BeginTx(context.Background(), nil)
	require.NoError(t, err)
	return dbmetrics.WithTx(context.Background(), tx)
}

func nineAM() time.Time {
	return time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC)
}

func appointmentRow(rows *sqlmock.Rows, id int64, start time.Time, status string) *sqlmock.Rows {
	now := time.Date(2098, 12, 1, 10, 0, 0, 0, time.UTC)
	return rows.AddRow(id, 3, 1, 2, start, status, nil, now, now, "Maria", "Joao", "Corte", 35.0, 30)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Date(2098, 12, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO appointments \(customer_id,provider_id,service_id,start_at,status,note\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING id, created_at, updated_at`).
		WithArgs(int64(3), int64(1), int64(2), nineAM(), domain.StatusScheduled, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		CustomerID: 3,
		ProviderID: 1,
		ServiceID:  2,
		Start:      nineAM(),
		Status:     domain.StatusScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ForeignKeyViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Appointment{Start: nineAM(), Status: domain.StatusScheduled})

	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT a\.id, .* FROM appointments a JOIN customers c ON c\.id = a\.customer_id JOIN providers p ON p\.id = a\.provider_id JOIN services s ON s\.id = a\.service_id WHERE a\.id = \$1$`).
		WithArgs(int64(10)).
		WillReturnRows(appointmentRow(sqlmock.NewRows(columns), 10, nineAM(), "SCHEDULED"))

	got, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.Equal(t, "Corte", got.ServiceName)
	assert.Equal(t, 30, got.ServiceDurationMinutes)
	assert.Equal(t, nineAM().Add(30*time.Minute), got.End())
	assert.Nil(t, got.Note)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`FROM appointments a`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetByIDForUpdate_LocksInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	ctx := inTx(t, db, mock)

	mock.ExpectQuery(`WHERE a\.id = \$1 FOR UPDATE OF a$`).
		WithArgs(int64(10)).
		WillReturnRows(appointmentRow(sqlmock.NewRows(columns), 10, nineAM(), "SCHEDULED"))

	_, err := repo.GetByIDForUpdate(ctx, 10)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByProviderAndDay(t *testing.T) {
	dayStart := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	t.Run("without transaction", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		rows := sqlmock.NewRows(columns)
		appointmentRow(rows, 1, nineAM(), "SCHEDULED")
		appointmentRow(rows, 2, nineAM().Add(time.Hour), "CANCELLED")

		mock.ExpectQuery(`WHERE a\.provider_id = \$1 AND a\.start_at >= \$2 AND a\.start_at < \$3 ORDER BY a\.start_at ASC, a\.id ASC$`).
			WithArgs(int64(1), dayStart, dayEnd).
			WillReturnRows(rows)

		got, err := repo.GetByProviderAndDay(context.Background(), 1, dayStart, dayEnd)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.StatusCancelled, got[1].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in transaction rows are locked", func(t *testing.T) {
		repo, db, mock := newRepo(t)
		ctx := inTx(t, db, mock)

		mock.ExpectQuery(`ORDER BY a\.start_at ASC, a\.id ASC FOR UPDATE OF a$`).
			WithArgs(int64(1), dayStart, dayEnd).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.GetByProviderAndDay(ctx, 1, dayStart, dayEnd)

		require.NoError(t, err)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	repo, _, mock := newRepo(t)
	status := domain.StatusScheduled

	mock.ExpectQuery(`WHERE a\.customer_id = \$1 AND a\.status = \$2 ORDER BY`).
		WithArgs(int64(3), domain.StatusScheduled).
		WillReturnRows(appointmentRow(sqlmock.NewRows(columns), 10, nineAM(), "SCHEDULED"))

	got, err := repo.List(context.Background(), domain.AppointmentsFilter{
		CustomerID: ptr.Ptr(int64(3)),
		Status:     &status,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := newRepo(t)
	updatedAt := time.Date(2098, 12, 2, 8, 0, 0, 0, time.UTC)
	note := "fade"

	mock.ExpectQuery(`UPDATE appointments SET start_at = \$1, status = \$2, note = \$3, updated_at = NOW\(\) WHERE id = \$4 RETURNING updated_at`).
		WithArgs(nineAM(), domain.StatusScheduled, &note, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	a := &domain.Appointment{ID: 10, Start: nineAM(), Status: domain.StatusScheduled, Note: &note}
	require.NoError(t, repo.Update(context.Background(), a))
	assert.Equal(t, updatedAt, a.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(domain.StatusCompleted, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE appointments`).
		WithArgs(domain.StatusCompleted, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.StatusCompleted))
	require.ErrorIs(t, repo.UpdateStatus(context.Background(), 11, domain.StatusCompleted), ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

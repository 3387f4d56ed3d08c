package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

var columns = []string{"id", "name", "description", "price", "duration_minutes", "active", "created_at", "updated_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	ts := time.Date(2098, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO services \(name,description,price,duration_minutes,active\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id, created_at, updated_at`).
		WithArgs("Corte", nil, 35.0, 30, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, ts, ts))

	created, err := repo.Create(context.Background(), &domain.Service{
		Name:            "Corte",
		Price:           35,
		DurationMinutes: 30,
		Active:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_NameTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO services`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "services_name_lower_key"})

	_, err := repo.Create(context.Background(), &domain.Service{Name: "corte", Price: 35, DurationMinutes: 30})

	require.ErrorIs(t, err, ErrNameTaken)
}

func TestRepository_Create_ValueRejected(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO services`).
		WillReturnError(&pq.Error{Code: "22003"})

	_, err := repo.Create(context.Background(), &domain.Service{Name: "corte", Price: 1e9, DurationMinutes: 30})

	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	ts := time.Date(2098, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, description, price, duration_minutes, active, created_at, updated_at FROM services WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(2, "Corte", "Tesoura e maquina", []byte("35.00"), 30, true, ts, ts))

	got, err := repo.GetByID(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 35.0, got.Price)
	assert.Equal(t, 30, got.DurationMinutes)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Tesoura e maquina", *got.Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM services`).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 9)

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_ExistsByName(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM services WHERE LOWER\(name\) = \$1 AND id <> \$2 \)`).
		WithArgs("corte", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByName(context.Background(), "  CORTE ", ptr.Ptr(int64(2)))

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	ts := time.Date(2098, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM services ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Barba", nil, 20.0, 15, false, ts, ts).
			AddRow(2, "Corte", nil, 35.0, 30, true, ts, ts))

	got, err := repo.List(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE services SET name = \$1, description = \$2, price = \$3, duration_minutes = \$4, active = \$5, updated_at = NOW\(\) WHERE id = \$6 RETURNING updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &domain.Service{ID: 9, Name: "Corte", Price: 35, DurationMinutes: 30})

	require.ErrorIs(t, err, ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_ValueRejected(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE services`).
		WillReturnError(&pq.Error{Code: "23514"})

	err := repo.Update(context.Background(), &domain.Service{ID: 9, Name: "Corte", Price: 0.001, DurationMinutes: 30})

	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE services SET active = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(false, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), 2, false))
	require.NoError(t, mock.ExpectationsWereMet())
}

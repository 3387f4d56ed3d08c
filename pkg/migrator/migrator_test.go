package migrator

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"002_appointments.sql": {Data: []byte("CREATE TABLE appointments (id BIGSERIAL)")},
		"001_catalog.sql":      {Data: []byte("CREATE TABLE providers (id BIGSERIAL)")},
		"README.md":            {Data: []byte("docs")},
		"draft.sql":            {Data: []byte("SELECT 1")},
	}
}

func TestMigrator_Load(t *testing.T) {
	m := New(nil, testFS())

	migrations, err := m.Load()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "002_appointments.sql", migrations[1].Name)
}

func TestMigrator_UpSkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, applied_at FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "applied_at"}).AddRow(1, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE appointments")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs(2, "002_appointments.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := New(db, testFS()).Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_Status(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	appliedAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, applied_at FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "applied_at"}).AddRow(1, appliedAt))

	statuses, err := New(db, testFS()).Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.True(t, statuses[0].Applied)
	assert.Equal(t, appliedAt, *statuses[0].AppliedAt)
	assert.False(t, statuses[1].Applied)
	assert.Nil(t, statuses[1].AppliedAt)
}

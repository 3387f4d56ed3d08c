package txmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewTransactionManager(dbmetrics.New(sqlDB, nil, "test"), WithRetryDelay(time.Millisecond)), mock
}

func TestDoSerializable_Commit(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		called = true
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	m, mock := newManager(t)
	sentinel := errors.New("business rule")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	m, mock := newManager(t)
	m.maxRetries = 1

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40P01"}
	})

	require.ErrorIs(t, err, ErrRetriesExhausted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.Do(context.Background(), func(outer context.Context) error {
		return m.DoSerializable(outer, func(inner context.Context) error {
			outerTx, _ := dbmetrics.GetTx(outer)
			innerTx, _ := dbmetrics.GetTx(inner)
			assert.Same(t, outerTx, innerTx)
			return nil
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryable(errors.Join(errors.New("wrapped"), &pq.Error{Code: "40P01"})))
	assert.False(t, IsRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

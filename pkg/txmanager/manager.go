package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 20 * time.Millisecond

	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// TxBeginner источник транзакций (dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции, кладя её в контекст
// Ошибки сериализации и дедлоки PostgreSQL повторяются maxRetries раз
type TransactionManager struct {
	db         TxBeginner
	maxRetries int
	retryDelay time.Duration
}

// Option настройка TransactionManager
type Option func(*TransactionManager)

// WithMaxRetries задает количество повторов при конфликте сериализации
func WithMaxRetries(n int) Option {
	return func(m *TransactionManager) {
		m.maxRetries = n
	}
}

// WithRetryDelay задает паузу между повторами
func WithRetryDelay(d time.Duration) Option {
	return func(m *TransactionManager) {
		m.retryDelay = d
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:         db,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.retryDelay * time.Duration(attempt)):
			}
		}

		err = m.runOnce(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
}

func (m *TransactionManager) runOnce(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

// IsRetryable проверяет, что ошибка - конфликт сериализации или дедлок
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgSerializationFailure || pqErr.Code == pgDeadlockDetected
}

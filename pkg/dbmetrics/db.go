package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

const defaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, собирающая метрики запросов
// С nil-метриками работает как обычный *sql.DB
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// New оборачивает *sql.DB
func New(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики connection pool
// Сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := New(db, m, name)
	if m != nil {
		go wrapped.collectStats(defaultStatsInterval, stopCh)
	}
	return wrapped
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), row.Err())
	return row
}

// BeginTx начинает транзакцию, запросы которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &SqlTxWrapper{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats()
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}

// SqlTxWrapper обёртка над *sql.Tx с метриками
type SqlTxWrapper struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), err)
	return res, err
}

func (t *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), err)
	return rows, err
}

func (t *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operation(query), time.Since(start).Seconds(), row.Err())
	return row
}

func (t *SqlTxWrapper) Commit() error {
	return t.tx.Commit()
}

func (t *SqlTxWrapper) Rollback() error {
	return t.tx.Rollback()
}

// operation возвращает тип запроса (select, insert, ...) для метки метрики
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

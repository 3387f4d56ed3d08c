package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"
)

const createTableQuery = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migration one SQL file, versioned by its numeric prefix (001_init.sql -> 1)
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Status applied/pending state of a migration
type Status struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Migrator применяет SQL миграции из fs.FS и ведёт учёт в schema_migrations
type Migrator struct {
	db     *sql.DB
	source fs.FS
}

// New создает мигратор
func New(db *sql.DB, source fs.FS) *Migrator {
	return &Migrator{db: db, source: source}
}

// Load читает все .sql файлы с числовым префиксом, отсортированные по версии
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := fs.ReadDir(m.source, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		content, err := fs.ReadFile(m.source, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Up применяет все неприменённые миграции, каждую в своей транзакции
// Возвращает количество применённых
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, createTableQuery); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := m.Load()
	if err != nil {
		return 0, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range migrations {
		if _, ok := applied[mig.Version]; ok {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return count, fmt.Errorf("apply migration %d (%s): %w", mig.Version, mig.Name, err)
		}
		count++
	}

	return count, nil
}

// Status возвращает состояние всех известных миграций
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	if _, err := m.db.ExecContext(ctx, createTableQuery); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := m.Load()
	if err != nil {
		return nil, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(migrations))
	for _, mig := range migrations {
		st := Status{Version: mig.Version, Name: mig.Name}
		if at, ok := applied[mig.Version]; ok {
			appliedAt := at
			st.Applied = true
			st.AppliedAt = &appliedAt
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}

func (m *Migrator) applied(ctx context.Context) (map[int]time.Time, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT version, applied_at FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var (
			version int
			at      time.Time
		)
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied migrations: %w", err)
	}

	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("execute SQL: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)",
		mig.Version, mig.Name,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}

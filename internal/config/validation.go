package config

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrLoadConfig = errors.New("config: failed to load")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	if c.Database.TxMaxRetries < 0 {
		return fmt.Errorf("%w: database.tx_max_retries must not be negative", ErrInvalidConfig)
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret is required when auth is enabled", ErrInvalidConfig)
	}

	if err := c.Scheduling.DefaultWorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: scheduling.default_work_start: %v", ErrInvalidConfig, err)
	}
	if err := c.Scheduling.DefaultWorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: scheduling.default_work_end: %v", ErrInvalidConfig, err)
	}
	if !c.Scheduling.DefaultWorkStart.IsBefore(c.Scheduling.DefaultWorkEnd) {
		return fmt.Errorf("%w: scheduling.default_work_start must be before default_work_end", ErrInvalidConfig)
	}

	return nil
}

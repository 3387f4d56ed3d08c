package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "scheduler"
password = "secret"
dbname = "barbershop"

[logs]
level = "debug"

[scheduling]
timezone = "America/Sao_Paulo"
default_work_start = "09:00"
default_work_end = "19:00"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "defaults survive partial files")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, types.TimeString("09:00"), cfg.Scheduling.DefaultWorkStart)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t,
		"host=db port=5433 user=scheduler password=secret dbname=barbershop sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "postgres.internal")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_SECRET", "s3cr3t")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cr3t", cfg.Auth.Secret)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, sampleConfig))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrLoadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port out of range", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "missing dbname", mutate: func(c *Config) { c.Database.DBName = "" }},
		{name: "auth without secret", mutate: func(c *Config) { c.Auth.Enabled = true }},
		{name: "inverted default hours", mutate: func(c *Config) {
			c.Scheduling.DefaultWorkStart = "18:00"
			c.Scheduling.DefaultWorkEnd = "08:00"
		}},
		{name: "malformed default hours", mutate: func(c *Config) { c.Scheduling.DefaultWorkEnd = "6pm" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Database.DBName = "barbershop"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

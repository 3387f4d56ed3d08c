package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	TxMaxRetries    int    `toml:"tx_max_retries"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки проверки bearer-токенов
// Токены выпускает внешний сервис, здесь только проверка подписи (HS256)
type AuthConfig struct {
	Enabled bool   `toml:"enabled"`
	Secret  string `toml:"secret"`
	Issuer  string `toml:"issuer"`
}

// SchedulingConfig параметры расписания
type SchedulingConfig struct {
	// Timezone IANA-зона, в которой сервис считает "сейчас" (пусто - локальная)
	Timezone         string           `toml:"timezone"`
	DefaultWorkStart types.TimeString `toml:"default_work_start"`
	DefaultWorkEnd   types.TimeString `toml:"default_work_end"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла
// Перед этим подгружает .env (если есть) и применяет переменные окружения поверх файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoadConfig, err)
	}

	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxRetries:    3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "scheduling-service",
		},
		Scheduling: SchedulingConfig{
			DefaultWorkStart: "08:00",
			DefaultWorkEnd:   "18:00",
		},
	}
}

// applyEnv переопределяет значения из переменных окружения
func applyEnv(cfg *Config) error {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setString(&cfg.Auth.Secret, "AUTH_SECRET")
	setString(&cfg.Scheduling.Timezone, "TZ_NAME")

	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := setBool(&cfg.Metrics.Enabled, "METRICS_ENABLED"); err != nil {
		return err
	}
	if err := setBool(&cfg.Auth.Enabled, "AUTH_ENABLED"); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidConfig, key, v)
	}
	*dst = b
	return nil
}

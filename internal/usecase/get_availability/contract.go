package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория мастеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByProviderAndDay получает все записи мастера с началом в [dayStart, dayEnd)
	GetByProviderAndDay(ctx context.Context, providerID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AppointmentCancelled(providerID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

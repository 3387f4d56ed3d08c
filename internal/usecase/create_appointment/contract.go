package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByProviderAndDay(ctx context.Context, providerID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error)
}

// ProviderRepository интерфейс репозитория мастеров
type ProviderRepository interface {
	// GetByIDForUpdate блокирует строку мастера до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Provider, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AppointmentCreated(providerID string)
	ConflictRejected(providerID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package pay_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ExistsByAppointmentID(ctx context.Context, appointmentID int64) (bool, error)
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
	PaymentRecorded(method string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

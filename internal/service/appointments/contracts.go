package appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	cancelAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_appointment"
)

type CancelAppointmentUseCase interface {
	Execute(ctx context.Context, req *cancelAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

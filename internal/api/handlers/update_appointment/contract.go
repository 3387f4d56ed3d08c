package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

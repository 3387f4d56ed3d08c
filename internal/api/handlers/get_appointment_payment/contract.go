package get_appointment_payment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetPayment(ctx context.Context, appointmentID int64) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_appointment

import (
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

// UpdateAppointmentRequest HTTP request model
// Все поля опциональны
type UpdateAppointmentRequest struct {
	Start  *string `json:"start,omitempty"` // "2025-10-15T10:00"
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
	Status *string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	req := &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Note:          r.Note,
		Status:        r.Status,
	}

	if r.Start != nil {
		start, err := handlers.ParseDateTime("start", *r.Start)
		if err != nil {
			return nil, err
		}
		req.Start = &start
	}

	return req, nil
}

package create_appointment

import (
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID int64   `json:"customerId" validate:"gt=0"`
	ProviderID int64   `json:"providerId" validate:"gt=0"`
	ServiceID  int64   `json:"serviceId" validate:"gt=0"`
	Start      string  `json:"start" validate:"required"` // "2025-10-15T10:00"
	Note       *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	start, err := handlers.ParseDateTime("start", r.Start)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: r.CustomerID,
		ProviderID: r.ProviderID,
		ServiceID:  r.ServiceID,
		Start:      start,
		Note:       r.Note,
	}, nil
}

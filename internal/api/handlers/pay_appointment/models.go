package pay_appointment

import (
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	payAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/pay_appointment"
)

// PayAppointmentRequest HTTP request model
type PayAppointmentRequest struct {
	AppointmentID int64   `json:"appointmentId" validate:"gt=0"`
	AmountCharged float64 `json:"amountCharged" validate:"gt=0"`
	Method        string  `json:"method" validate:"required"` // DINHEIRO, CARTAO_CREDITO, CARTAO_DEBITO, PIX
	PaidAt        *string `json:"paidAt,omitempty"`           // "2025-10-15T10:40", по умолчанию текущее время
	Note          *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PayAppointmentRequest) ToUseCaseRequest() (*payAppointment.Request, error) {
	req := &payAppointment.Request{
		AppointmentID: r.AppointmentID,
		Amount:        r.AmountCharged,
		Method:        r.Method,
		Note:          r.Note,
	}

	if r.PaidAt != nil {
		paidAt, err := handlers.ParseDateTime("paidAt", *r.PaidAt)
		if err != nil {
			return nil, err
		}
		req.PaidAt = &paidAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *payAppointment.Response) *models.PaymentReceiptResponse {
	return &models.PaymentReceiptResponse{
		Payment:     *models.FromDomainPayment(resp.Payment),
		Appointment: *models.FromDomainAppointment(resp.Appointment),
	}
}

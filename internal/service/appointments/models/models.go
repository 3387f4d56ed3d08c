package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
// Все фильтры опциональны
type ListAppointmentsRequest struct {
	CustomerID *int64     `json:"customerId,omitempty"`
	ProviderID *int64     `json:"providerId,omitempty"`
	Status     *string    `json:"status,omitempty"` // SCHEDULED, CANCELLED, COMPLETED
	From       *time.Time `json:"from,omitempty"`   // Начало периода, включительно
	To         *time.Time `json:"to,omitempty"`     // Конец периода, не включительно
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	ProviderID int64   `json:"providerId"`
	ServiceID  int64   `json:"serviceId"`
	Start      string  `json:"start"` // "2025-10-15T10:00"
	End        string  `json:"end"`   // начало + текущая длительность услуги
	Status     string  `json:"status"`
	Note       *string `json:"note,omitempty"`

	// Денормализованные данные
	CustomerName    string  `json:"customerName"`
	ProviderName    string  `json:"providerName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// PaymentResponse ответ с данными оплаты
type PaymentResponse struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointmentId"`
	AmountCharged float64 `json:"amountCharged"`
	Method        string  `json:"method"`
	PaidAt        string  `json:"paidAt"` // "2025-10-15T10:40"
	Note          *string `json:"note,omitempty"`
}

// PaymentReceiptResponse ответ на оплату: оплата и завершенная запись
type PaymentReceiptResponse struct {
	Payment     PaymentResponse     `json:"payment"`
	Appointment AppointmentResponse `json:"appointment"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		ProviderID:      a.ProviderID,
		ServiceID:       a.ServiceID,
		Start:           a.Start.Format(domain.DateTimeFormat),
		End:             a.End().Format(domain.DateTimeFormat),
		Status:          string(a.Status),
		Note:            a.Note,
		CustomerName:    a.CustomerName,
		ProviderName:    a.ProviderName,
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		DurationMinutes: a.ServiceDurationMinutes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// FromDomainPayment конвертирует domain модель оплаты в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		AppointmentID: p.AppointmentID,
		AmountCharged: p.AmountCharged,
		Method:        string(p.Method),
		PaidAt:        p.PaidAt.Format(domain.DateTimeFormat),
		Note:          p.Note,
	}
}

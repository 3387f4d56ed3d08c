package domain

import (
	"strings"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// AppointmentStatuses lists every valid status token
var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCancelled,
	StatusCompleted,
}

// ParseAppointmentStatus trims and upper-cases s, then requires an exact token match.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	token := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, status := range AppointmentStatuses {
		if token == status {
			return status, nil
		}
	}
	return "", Errorf(ErrValidation, "invalid appointment status %q, expected one of SCHEDULED, CANCELLED, COMPLETED", s)
}

// Appointment is a booking of one service with one provider for one customer.
type Appointment struct {
	ID         int64
	CustomerID int64
	ProviderID int64
	ServiceID  int64
	Start      time.Time
	Status     AppointmentStatus
	Note       *string

	// Read-only projections loaded by joins
	CustomerName           string
	ProviderName           string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// End is Start plus the current duration of the booked service.
func (a *Appointment) End() time.Time {
	return a.Start.Add(time.Duration(a.ServiceDurationMinutes) * time.Minute)
}

// Window returns [Start, End).
func (a *Appointment) Window() Window {
	return Window{Start: a.Start, End: a.End()}
}

// IsScheduled returns true if the appointment still occupies its window
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// CanBeModified fails with ErrInvalidState unless the appointment is scheduled
func (a *Appointment) CanBeModified() error {
	switch a.Status {
	case StatusCancelled:
		return Errorf(ErrInvalidState, "cannot modify a cancelled appointment")
	case StatusCompleted:
		return Errorf(ErrInvalidState, "cannot modify a completed appointment")
	}
	return nil
}

// CanBeCancelled fails with ErrInvalidState unless the appointment is scheduled
func (a *Appointment) CanBeCancelled() error {
	switch a.Status {
	case StatusCancelled:
		return Errorf(ErrInvalidState, "appointment is already cancelled")
	case StatusCompleted:
		return Errorf(ErrInvalidState, "cannot cancel a completed appointment")
	}
	return nil
}

// CanBePaid fails with ErrInvalidState unless the appointment is scheduled
func (a *Appointment) CanBePaid() error {
	switch a.Status {
	case StatusCancelled:
		return Errorf(ErrInvalidState, "cannot pay a cancelled appointment")
	case StatusCompleted:
		return Errorf(ErrInvalidState, "appointment is already completed")
	}
	return nil
}

// AppointmentsFilter фильтр для списка записей
type AppointmentsFilter struct {
	CustomerID *int64             // Фильтр по клиенту (опционально)
	ProviderID *int64             // Фильтр по мастеру (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	From       *time.Time         // Начало периода, включительно (опционально)
	To         *time.Time         // Конец периода, не включительно (опционально)
}

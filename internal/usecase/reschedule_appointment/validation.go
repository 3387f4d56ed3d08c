package reschedule_appointment

import (
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные и разбирает статус
func validateRequest(req *Request) (*domain.AppointmentStatus, error) {
	if req.AppointmentID <= 0 {
		return nil, domain.Errorf(domain.ErrValidation, "appointmentId is required")
	}

	if req.Start != nil && req.Start.IsZero() {
		return nil, domain.Errorf(domain.ErrValidation, "start must not be empty")
	}

	if req.Note != nil && domain.TooLong(*req.Note, domain.MaxNoteLength) {
		return nil, domain.Errorf(domain.ErrValidation, "note must be at most %d characters", domain.MaxNoteLength)
	}

	// Пустой статус равносилен отсутствующему
	if req.Status == nil || strings.TrimSpace(*req.Status) == "" {
		return nil, nil
	}

	status, err := domain.ParseAppointmentStatus(*req.Status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

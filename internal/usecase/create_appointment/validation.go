package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Наличие start проверяется позже, после поиска клиента, мастера и услуги
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return domain.Errorf(domain.ErrValidation, "customerId is required")
	}

	if req.ProviderID <= 0 {
		return domain.Errorf(domain.ErrValidation, "providerId is required")
	}

	if req.ServiceID <= 0 {
		return domain.Errorf(domain.ErrValidation, "serviceId is required")
	}

	if req.Note != nil && domain.TooLong(*req.Note, domain.MaxNoteLength) {
		return domain.Errorf(domain.ErrValidation, "note must be at most %d characters", domain.MaxNoteLength)
	}

	return nil
}

// validateNotInPast проверяет, что начало записи не раньше текущего момента
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrPastDate
	}
	return nil
}

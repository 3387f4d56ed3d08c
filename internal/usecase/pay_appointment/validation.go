package pay_appointment

import (
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest проверяет обязательные поля. Допустимость способа оплаты
// проверяется позже, после проверок записи.
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return domain.Errorf(domain.ErrValidation, "appointmentId is required")
	}

	if err := domain.ValidateAmount("amountCharged", req.Amount); err != nil {
		return err
	}

	if strings.TrimSpace(req.Method) == "" {
		return domain.Errorf(domain.ErrValidation, "method is required")
	}

	if req.Note != nil && domain.TooLong(*req.Note, domain.MaxNoteLength) {
		return domain.Errorf(domain.ErrValidation, "note must be at most %d characters", domain.MaxNoteLength)
	}

	return nil
}

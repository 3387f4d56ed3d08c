package get_availability

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return domain.Errorf(domain.ErrValidation, "providerId is required")
	}

	if req.Date.IsZero() {
		return domain.Errorf(domain.ErrValidation, "date is required")
	}

	return nil
}

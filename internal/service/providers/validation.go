package providers

import (
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateProfile проверяет имя и email мастера
func validateProfile(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Errorf(domain.ErrValidation, "name is required")
	}
	if domain.TooLong(name, domain.MaxNameLength) {
		return domain.Errorf(domain.ErrValidation, "name must be at most %d characters", domain.MaxNameLength)
	}
	if strings.TrimSpace(email) == "" {
		return domain.Errorf(domain.ErrValidation, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Errorf(domain.ErrValidation, "email %q is invalid", email)
	}
	return nil
}

// parseHour разбирает время "HH:MM", nil означает значение по умолчанию
func parseHour(field string, value *string, fallback types.TimeString) (types.TimeString, error) {
	if value == nil {
		return fallback, nil
	}
	ts, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return "", domain.Errorf(domain.ErrValidation, "%s must be in HH:MM format", field)
	}
	return ts, nil
}

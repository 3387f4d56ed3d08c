package get_availability

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = domain.Errorf(domain.ErrNotFound, "provider not found")

	// ErrNoWorkingHours возвращается, когда у мастера не настроены рабочие часы
	ErrNoWorkingHours = domain.Errorf(domain.ErrValidation, "provider has no working hours configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)

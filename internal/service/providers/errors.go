package providers

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = domain.Errorf(domain.ErrNotFound, "provider not found")

	// ErrUnknownService возвращается при привязке несуществующей услуги
	ErrUnknownService = domain.Errorf(domain.ErrValidation, "serviceIds contains an unknown service")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers.service: internal error")
)

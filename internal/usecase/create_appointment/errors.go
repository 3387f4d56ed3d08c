package create_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = domain.Errorf(domain.ErrNotFound, "customer not found")

	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = domain.Errorf(domain.ErrNotFound, "provider not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = domain.Errorf(domain.ErrNotFound, "service not found")

	// ErrProviderInactive возвращается, когда мастер деактивирован
	ErrProviderInactive = domain.Errorf(domain.ErrInvalidState, "provider is inactive")

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = domain.Errorf(domain.ErrInvalidState, "service is inactive")

	// ErrStartRequired возвращается, когда не указано время начала
	ErrStartRequired = domain.Errorf(domain.ErrValidation, "start is required")

	// ErrPastDate возвращается, когда время начала уже прошло
	ErrPastDate = domain.Errorf(domain.ErrPastDate, "cannot book an appointment in the past")

	// ErrSchedulingConflict возвращается, когда окно пересекается с другой записью мастера
	ErrSchedulingConflict = domain.Errorf(domain.ErrSchedulingConflict, "provider already has an appointment at this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

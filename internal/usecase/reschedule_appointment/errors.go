package reschedule_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = domain.Errorf(domain.ErrNotFound, "appointment not found")

	// ErrProviderInactive возвращается, когда мастер деактивирован
	ErrProviderInactive = domain.Errorf(domain.ErrInvalidState, "provider is inactive")

	// ErrServiceInactive возвращается, когда услуга записи деактивирована
	ErrServiceInactive = domain.Errorf(domain.ErrInvalidState, "service is inactive")

	// ErrCompletionNotAllowed возвращается при попытке завершить запись без оплаты
	ErrCompletionNotAllowed = domain.Errorf(domain.ErrInvalidState, "completion is only possible through payment")

	// ErrPastDate возвращается, когда новое время начала уже прошло
	ErrPastDate = domain.Errorf(domain.ErrPastDate, "cannot move an appointment into the past")

	// ErrSchedulingConflict возвращается, когда новое окно пересекается с другой записью мастера
	ErrSchedulingConflict = domain.Errorf(domain.ErrSchedulingConflict, "provider already has an appointment at this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)

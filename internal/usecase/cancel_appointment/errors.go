package cancel_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = domain.Errorf(domain.ErrNotFound, "appointment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)

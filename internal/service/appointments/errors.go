package appointments

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = domain.Errorf(domain.ErrNotFound, "appointment not found")

	// ErrPaymentNotFound возвращается, когда у записи нет оплаты
	ErrPaymentNotFound = domain.Errorf(domain.ErrNotFound, "payment not found")

	// ErrInvalidTimeRange возвращается, когда from не раньше to
	ErrInvalidTimeRange = domain.Errorf(domain.ErrValidation, "from must be before to")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)

package pay_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = domain.Errorf(domain.ErrNotFound, "appointment not found")

	// ErrDuplicatePayment возвращается, когда у записи уже есть оплата
	ErrDuplicatePayment = domain.Errorf(domain.ErrDuplicatePayment, "appointment already has a payment")

	// ErrInvalidAmount возвращается, когда сумма не помещается в денежный столбец
	ErrInvalidAmount = domain.Errorf(domain.ErrValidation, "amountCharged is out of range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_appointment: internal error")
)

package domain

import (
	"strings"
	"time"
)

// PaymentMethod is how an appointment was paid for
type PaymentMethod string

const (
	MethodCash       PaymentMethod = "DINHEIRO"
	MethodCreditCard PaymentMethod = "CARTAO_CREDITO"
	MethodDebitCard  PaymentMethod = "CARTAO_DEBITO"
	MethodPix        PaymentMethod = "PIX"
)

// PaymentMethods lists every valid method token
var PaymentMethods = []PaymentMethod{
	MethodCash,
	MethodCreditCard,
	MethodDebitCard,
	MethodPix,
}

// ParsePaymentMethod trims and upper-cases s, then requires an exact token match.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	token := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	for _, method := range PaymentMethods {
		if token == method {
			return method, nil
		}
	}
	return "", Errorf(ErrValidation, "invalid payment method %q, expected one of DINHEIRO, CARTAO_CREDITO, CARTAO_DEBITO, PIX", s)
}

// Payment records the charge that completed an appointment. Immutable once stored.
type Payment struct {
	ID            int64
	AppointmentID int64
	AmountCharged float64
	Method        PaymentMethod
	PaidAt        time.Time
	Note          *string
}

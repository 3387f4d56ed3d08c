package pay_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на оплату записи
type Request struct {
	AppointmentID int64      // ID записи
	Amount        float64    // Сумма, больше нуля
	Method        string     // Способ оплаты: DINHEIRO, CARTAO_CREDITO, CARTAO_DEBITO, PIX
	PaidAt        *time.Time // Время оплаты (по умолчанию текущее)
	Note          *string    // Комментарий (опционально)
}

// Response модель ответа с оплатой и завершенной записью
type Response struct {
	Payment     *domain.Payment
	Appointment *domain.Appointment
}

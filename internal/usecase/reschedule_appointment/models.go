package reschedule_appointment

import "time"

// Request модель частичного обновления записи
// Незаданные (nil) поля не меняются
type Request struct {
	AppointmentID int64      // ID записи
	Start         *time.Time // Новое начало, локальное время
	Note          *string    // Новый комментарий (заменяет прежний)
	Status        *string    // Новый статус: SCHEDULED, CANCELLED (COMPLETED только через оплату)
}

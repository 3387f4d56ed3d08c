package cancel_appointment

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID int64 // ID записи
}

package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64     // ID клиента
	ProviderID int64     // ID мастера
	ServiceID  int64     // ID услуги
	Start      time.Time // Начало записи, локальное время (нулевое значение = не указано)
	Note       *string   // Комментарий (опционально)
}

package get_availability

import "time"

// Request модель запроса занятости мастера на дату
type Request struct {
	ProviderID int64     // ID мастера
	Date       time.Time // Дата (время суток игнорируется)
}

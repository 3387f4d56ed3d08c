package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrInvalidReference возвращается, когда клиент, мастер или услуга не существуют
	ErrInvalidReference = errors.New("appointment.repository: referenced entity does not exist")
)

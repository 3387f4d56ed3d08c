package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда оплата не найдена
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrPaymentExists возвращается, когда у записи уже есть оплата
	ErrPaymentExists = errors.New("payment.repository: appointment already has a payment")

	// ErrInvalidAmount возвращается, когда сумма не прошла ограничения столбца
	ErrInvalidAmount = errors.New("payment.repository: amount rejected by database")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)

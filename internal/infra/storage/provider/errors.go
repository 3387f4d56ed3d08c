package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("provider.repository: provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("provider.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")

	// ErrUnknownService возвращается при привязке несуществующей услуги
	ErrUnknownService = errors.New("provider.repository: unknown service id")
)

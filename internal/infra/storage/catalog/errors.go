package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrNameTaken возвращается, когда услуга с таким названием уже есть
	ErrNameTaken = errors.New("catalog.repository: service name already exists")

	// ErrInvalidValue возвращается, когда цена или длительность не прошли ограничения столбцов
	ErrInvalidValue = errors.New("catalog.repository: value rejected by database")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)

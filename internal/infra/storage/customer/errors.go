package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrEmailTaken возвращается, когда клиент с таким email уже есть
	ErrEmailTaken = errors.New("customer.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)

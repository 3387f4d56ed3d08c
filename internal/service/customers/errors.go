package customers

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = domain.Errorf(domain.ErrNotFound, "customer not found")

	// ErrEmailTaken возвращается, когда клиент с таким email уже зарегистрирован
	ErrEmailTaken = domain.Errorf(domain.ErrAlreadyExists, "a customer with this email already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers.service: internal error")
)

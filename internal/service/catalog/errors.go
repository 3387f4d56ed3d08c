package catalog

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = domain.Errorf(domain.ErrNotFound, "service not found")

	// ErrNameTaken возвращается, когда услуга с таким названием уже существует
	ErrNameTaken = domain.Errorf(domain.ErrAlreadyExists, "a service with this name already exists")

	// ErrInvalidValue возвращается, когда цена или длительность не помещаются в столбцы каталога
	ErrInvalidValue = domain.Errorf(domain.ErrValidation, "price or duration is out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)

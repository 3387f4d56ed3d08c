package catalog

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

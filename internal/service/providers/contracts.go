package providers

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория мастеров
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Provider, error)
	Update(ctx context.Context, provider *domain.Provider) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetServices(ctx context.Context, providerID int64, serviceIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

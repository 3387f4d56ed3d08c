package providers

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

type ProviderService interface {
	Create(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ProviderResponse, error)
	List(ctx context.Context, activeOnly bool) (*models.ProviderListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateProviderRequest) (*models.ProviderResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package customers

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

type CustomerService interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error)
	List(ctx context.Context) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

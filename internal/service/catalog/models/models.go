package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"gt=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"gt=0"`
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			resp.Services = append(resp.Services, *item)
		}
	}

	return resp
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateProviderRequest запрос на создание мастера
// Если рабочие часы не указаны, берутся значения по умолчанию
type CreateProviderRequest struct {
	Name       string  `json:"name" validate:"required,max=150"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      string  `json:"email" validate:"required,email,max=150"`
	WorkStart  *string `json:"workStart,omitempty"` // "09:00"
	WorkEnd    *string `json:"workEnd,omitempty"`   // "18:00"
	ServiceIDs []int64 `json:"serviceIds,omitempty" validate:"omitempty,dive,gt=0"`
}

// UpdateProviderRequest запрос на обновление мастера
// Все поля опциональны - обновляются только переданные значения
type UpdateProviderRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Phone      *string  `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      *string  `json:"email,omitempty" validate:"omitempty,email,max=150"`
	WorkStart  *string  `json:"workStart,omitempty"`
	WorkEnd    *string  `json:"workEnd,omitempty"`
	ServiceIDs *[]int64 `json:"serviceIds,omitempty"` // полностью заменяет список услуг
}

// Response модели

// ProviderResponse ответ с данными мастера
type ProviderResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Email      string    `json:"email"`
	WorkStart  string    `json:"workStart"`
	WorkEnd    string    `json:"workEnd"`
	Active     bool      `json:"active"`
	ServiceIDs []int64   `json:"serviceIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProviderListResponse ответ со списком мастеров
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}

	serviceIDs := p.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &ProviderResponse{
		ID:         p.ID,
		Name:       p.Name,
		Phone:      p.Phone,
		Email:      p.Email,
		WorkStart:  p.WorkStart.String(),
		WorkEnd:    p.WorkEnd.String(),
		Active:     p.Active,
		ServiceIDs: serviceIDs,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	resp := &ProviderListResponse{
		Providers: make([]ProviderResponse, 0, len(providers)),
	}

	for _, p := range providers {
		if item := FromDomainProvider(p); item != nil {
			resp.Providers = append(resp.Providers, *item)
		}
	}

	return resp
}

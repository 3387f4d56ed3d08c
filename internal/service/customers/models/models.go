package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateCustomerRequest запрос на регистрацию клиента
type CreateCustomerRequest struct {
	Name  string  `json:"name" validate:"required,max=150"`
	Email string  `json:"email" validate:"required,email,max=150"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// UpdateCustomerRequest запрос на обновление клиента
// Все поля опциональны - обновляются только переданные значения
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		if item := FromDomainCustomer(c); item != nil {
			resp.Customers = append(resp.Customers, *item)
		}
	}
	return resp
}

package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

// Service сервис клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{customerRepo: customerRepo, logger: logger}
}

// Create регистрирует клиента, email должен быть уникальным
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Create: registering customer email=%q", email)

	if name == "" {
		return nil, domain.Errorf(domain.ErrValidation, "name is required")
	}
	if email == "" {
		return nil, domain.Errorf(domain.ErrValidation, "email is required")
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExistsByEmail - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: email %q already registered", email)
		return nil, ErrEmailTaken
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{Name: name, Email: email, Phone: req.Phone})
	if err != nil {
		if errors.Is(err, customerRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(customer), nil
}

// Update частично обновляет клиента
// Новый email не должен принадлежать другому клиенту
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%d", id)

	// 1. Получаем клиента
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем изменения
	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
		if customer.Name == "" {
			return nil, domain.Errorf(domain.ErrValidation, "name must not be blank")
		}
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, domain.Errorf(domain.ErrValidation, "email must not be blank")
		}

		// 3. Email не должен быть занят другим клиентом
		taken, err := s.customerRepo.ExistsByEmailExcluding(ctx, email, id)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: ExistsByEmailExcluding - repository error: %v", ErrInternal, err)
		}
		if taken {
			s.logger.Warn("Update: email %q already registered", email)
			return nil, ErrEmailTaken
		}
		customer.Email = email
	}

	// 4. Сохраняем
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		switch {
		case errors.Is(err, customerRepo.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, customerRepo.ErrCustomerNotFound):
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: failed to update customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%d", id)
	return models.FromDomainCustomer(customer), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomerList(customers), nil
}

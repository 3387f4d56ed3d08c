package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог. Название уникально без учета регистра.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	service := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if err := service.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkNameFree(ctx, service.Name, nil); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNameTaken) {
			s.logger.Warn("Create: name %q taken concurrently", service.Name)
			return nil, ErrNameTaken
		}
		if errors.Is(err, catalogRepo.ErrInvalidValue) {
			s.logger.Warn("Create: value rejected: %v", err)
			return nil, ErrInvalidValue
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainService(service), nil
}

// List получает услуги, activeOnly скрывает деактивированные
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// Update частично обновляет услугу
// Изменение длительности сдвигает вычисляемый конец уже существующих записей
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	service, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	renamed := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		renamed = !domain.SameName(name, service.Name)
		service.Name = name
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}

	if err := service.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	if renamed {
		if err := s.checkNameFree(ctx, service.Name, &service.ID); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrNameTaken):
			return nil, ErrNameTaken
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrInvalidValue):
			s.logger.Warn("Update: value rejected for service id=%d: %v", id, err)
			return nil, ErrInvalidValue
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Deactivate мягко снимает услугу с записи. Существующие записи остаются.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating service id=%d", id)

	if err := s.serviceRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Deactivate: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Deactivate: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found", op, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return service, nil
}

func (s *Service) checkNameFree(ctx context.Context, name string, excludeID *int64) error {
	exists, err := s.serviceRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		s.logger.Error("checkNameFree: repository error: %v", err)
		return fmt.Errorf("%w: ExistsByName - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("checkNameFree: service name %q already exists", name)
		return ErrNameTaken
	}
	return nil
}

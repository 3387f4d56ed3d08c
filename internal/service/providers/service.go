package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service сервис управления мастерами и их рабочими часами
type Service struct {
	providerRepo     ProviderRepository
	txManager        TransactionManager
	defaultWorkStart types.TimeString
	defaultWorkEnd   types.TimeString
	logger           Logger
}

// NewService создает новый экземпляр сервиса мастеров
// defaultWorkStart и defaultWorkEnd применяются, когда часы не переданы при создании
func NewService(
	providerRepo ProviderRepository,
	txManager TransactionManager,
	defaultWorkStart types.TimeString,
	defaultWorkEnd types.TimeString,
	logger Logger,
) *Service {
	return &Service{
		providerRepo:     providerRepo,
		txManager:        txManager,
		defaultWorkStart: defaultWorkStart,
		defaultWorkEnd:   defaultWorkEnd,
		logger:           logger,
	}
}

// Create создает мастера и привязывает к нему услуги
func (s *Service) Create(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Create: creating provider name=%q, email=%q", req.Name, req.Email)

	// 1. Валидируем входные данные
	if err := validateProfile(req.Name, req.Email); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	workStart, err := parseHour("workStart", req.WorkStart, s.defaultWorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := parseHour("workEnd", req.WorkEnd, s.defaultWorkEnd)
	if err != nil {
		return nil, err
	}

	provider := &domain.Provider{
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Email:     strings.TrimSpace(req.Email),
		WorkStart: workStart,
		WorkEnd:   workEnd,
		Active:    true,
	}
	if err := provider.ValidateHours(); err != nil {
		s.logger.Warn("Create: invalid working hours: %v", err)
		return nil, err
	}

	// 2. Сохраняем мастера и его услуги в одной транзакции
	var providerID int64
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.providerRepo.Create(txCtx, provider)
		if err != nil {
			s.logger.Error("Create: failed to create provider: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		providerID = created.ID

		if len(req.ServiceIDs) == 0 {
			return nil
		}
		return s.setServices(txCtx, created.ID, req.ServiceIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created provider id=%d", providerID)
	return s.GetByID(ctx, providerID)
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProviderResponse, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetByID: provider id=%d not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetByID: repository error for provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}

// List получает мастеров, activeOnly скрывает деактивированных
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ProviderListResponse, error) {
	s.logger.Info("List: fetching providers, activeOnly=%t", activeOnly)

	providers, err := s.providerRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProviderList(providers), nil
}

// Update частично обновляет мастера
// Рабочие часы проверяются заново с учетом неизмененной границы
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Update: updating provider id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем мастера с блокировкой
		provider, err := s.providerRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				s.logger.Warn("Update: provider id=%d not found", id)
				return ErrProviderNotFound
			}
			s.logger.Error("Update: repository error for provider id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// 2. Применяем изменения
		if req.Name != nil {
			provider.Name = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			provider.Email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			provider.Phone = req.Phone
		}
		if provider.WorkStart, err = parseHour("workStart", req.WorkStart, provider.WorkStart); err != nil {
			return err
		}
		if provider.WorkEnd, err = parseHour("workEnd", req.WorkEnd, provider.WorkEnd); err != nil {
			return err
		}

		// 3. Валидируем результат
		if err := validateProfile(provider.Name, provider.Email); err != nil {
			s.logger.Warn("Update: validation failed for provider id=%d: %v", id, err)
			return err
		}
		if err := provider.ValidateHours(); err != nil {
			s.logger.Warn("Update: invalid working hours for provider id=%d: %v", id, err)
			return err
		}

		// 4. Сохраняем
		if err := s.providerRepo.Update(txCtx, provider); err != nil {
			s.logger.Error("Update: failed to update provider id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if req.ServiceIDs != nil {
			return s.setServices(txCtx, id, *req.ServiceIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated provider id=%d", id)
	return s.GetByID(ctx, id)
}

// Deactivate мягко деактивирует мастера. Существующие записи не меняются.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating provider id=%d", id)

	if err := s.providerRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Deactivate: provider id=%d not found", id)
			return ErrProviderNotFound
		}
		s.logger.Error("Deactivate: repository error for provider id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) setServices(ctx context.Context, providerID int64, serviceIDs []int64) error {
	if err := s.providerRepo.SetServices(ctx, providerID, serviceIDs); err != nil {
		if errors.Is(err, providerRepo.ErrUnknownService) {
			s.logger.Warn("setServices: provider id=%d: unknown service in %v", providerID, serviceIDs)
			return ErrUnknownService
		}
		s.logger.Error("setServices: failed for provider id=%d: %v", providerID, err)
		return fmt.Errorf("%w: SetServices - repository error: %v", ErrInternal, err)
	}
	return nil
}

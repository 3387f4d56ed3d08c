package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	providerRepo    ProviderRepository
	serviceRepo     ServiceRepository
	customerRepo    CustomerRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	providerRepo ProviderRepository,
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		providerRepo:    providerRepo,
		serviceRepo:     serviceRepo,
		customerRepo:    customerRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию и блокировку строки мастера, чтобы
// конкурентные записи к одному мастеру проверялись по очереди
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: customer=%d, provider=%d, service=%d, start=%s",
		req.CustomerID, req.ProviderID, req.ServiceID, req.Start.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Выполняем проверки и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Клиент
		customer, err := uc.customerRepo.GetByID(txCtx, req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
		}

		// 3.2. Мастер, строка блокируется до конца транзакции
		provider, err := uc.providerRepo.GetByIDForUpdate(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				uc.logger.Warn("CreateAppointment: provider id=%d not found", req.ProviderID)
				return ErrProviderNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get provider id=%d: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to get provider: %w", ErrInternal, err)
		}

		// 3.3. Услуга
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}

		if !provider.Active {
			uc.logger.Warn("CreateAppointment: provider id=%d is inactive", provider.ID)
			return ErrProviderInactive
		}
		if !service.Active {
			uc.logger.Warn("CreateAppointment: service id=%d is inactive", service.ID)
			return ErrServiceInactive
		}

		// 3.4. Время начала
		if req.Start.IsZero() {
			uc.logger.Warn("CreateAppointment: start is missing")
			return ErrStartRequired
		}

		window, err := domain.NewWindow(req.Start, service.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateAppointment: service id=%d has invalid duration: %v", service.ID, err)
			return fmt.Errorf("%w: build window: %v", ErrInternal, err)
		}

		if err := validateNotInPast(window.Start, now); err != nil {
			uc.logger.Warn("CreateAppointment: start %s is before now %s",
				window.Start.Format(domain.DateTimeFormat), now.Format(domain.DateTimeFormat))
			return err
		}

		// 3.5. Рабочие часы мастера
		if err := provider.ValidateWithinWorkingHours(window); err != nil {
			uc.logger.Warn("CreateAppointment: provider id=%d: %v", provider.ID, err)
			return err
		}

		// 3.6. Записи мастера за день с блокировкой (FOR UPDATE)
		dayStart, dayEnd := domain.DayBounds(window.Start)
		existing, err := uc.appointmentRepo.GetByProviderAndDay(txCtx, provider.ID, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 3.7. Проверка пересечений
		if conflict := domain.FindConflict(window, nil, existing); conflict != nil {
			uc.logger.Warn("CreateAppointment: window %s-%s conflicts with appointment id=%d",
				window.StartTime(), window.EndTime(), conflict.ID)
			uc.metrics.ConflictRejected(strconv.FormatInt(provider.ID, 10))
			return ErrSchedulingConflict
		}

		// 3.8. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerID: customer.ID,
			ProviderID: provider.ID,
			ServiceID:  service.ID,
			Start:      window.Start,
			Status:     domain.StatusScheduled,
			Note:       req.Note,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		// Денормализованные данные
		created.CustomerName = customer.Name
		created.ProviderName = provider.Name
		created.ServiceName = service.Name
		created.ServicePrice = service.Price
		created.ServiceDurationMinutes = service.DurationMinutes

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.AppointmentCreated(strconv.FormatInt(result.ProviderID, 10))
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return result, nil
}

package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case для переноса и частичного изменения записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	providerRepo    ProviderRepository
	serviceRepo     ServiceRepository
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
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		providerRepo:    providerRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case
// Изменять можно только запись в статусе SCHEDULED. Новое окно проверяется так же,
// как при создании, собственная запись в поиске пересечений не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Изменения в сериализуемой транзакции
	// Блокировки берутся в том же порядке, что и при создании: мастер, затем записи
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Запись без блокировки, чтобы узнать мастера
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			return uc.appointmentError(req.AppointmentID, err)
		}

		// 3.2. При переносе блокируем мастера
		var provider *domain.Provider
		if req.Start != nil {
			provider, err = uc.providerRepo.GetByIDForUpdate(txCtx, current.ProviderID)
			if err != nil {
				uc.logger.Error("RescheduleAppointment: failed to get provider id=%d: %v", current.ProviderID, err)
				return fmt.Errorf("%w: failed to get provider: %w", ErrInternal, err)
			}
		}

		// 3.3. Запись с блокировкой
		appointment, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			return uc.appointmentError(req.AppointmentID, err)
		}

		// 3.4. Изменять можно только активную запись
		if err := appointment.CanBeModified(); err != nil {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d: %v", appointment.ID, err)
			return err
		}

		if status != nil && *status == domain.StatusCompleted {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d: completion requested", appointment.ID)
			return ErrCompletionNotAllowed
		}

		// 3.5. Перенос
		if req.Start != nil {
			if err := uc.move(txCtx, appointment, provider, *req.Start, now); err != nil {
				return err
			}
		}

		// 3.6. Комментарий
		if req.Note != nil {
			appointment.Note = req.Note
		}

		// 3.7. Статус: SCHEDULED ничего не меняет
		if status != nil && *status == domain.StatusCancelled {
			appointment.Status = domain.StatusCancelled
		}

		if err := uc.appointmentRepo.Update(txCtx, appointment); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Status == domain.StatusCancelled {
		uc.metrics.AppointmentCancelled(strconv.FormatInt(result.ProviderID, 10))
	}
	uc.logger.Info("RescheduleAppointment: successfully updated appointment id=%d", result.ID)

	return result, nil
}

// appointmentError переводит ошибку репозитория записей в ошибку usecase
func (uc *UseCase) appointmentError(id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", id)
		return ErrAppointmentNotFound
	}
	uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
}

// move проверяет новое окно и переставляет запись
// provider уже заблокирован вызывающим кодом
func (uc *UseCase) move(ctx context.Context, appointment *domain.Appointment, provider *domain.Provider, start, now time.Time) error {
	if !provider.Active {
		uc.logger.Warn("RescheduleAppointment: provider id=%d is inactive", provider.ID)
		return ErrProviderInactive
	}

	service, err := uc.serviceRepo.GetByID(ctx, appointment.ServiceID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", appointment.ServiceID, err)
		return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("RescheduleAppointment: service id=%d is inactive", service.ID)
		return ErrServiceInactive
	}

	window, err := domain.NewWindow(start, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: service id=%d has invalid duration: %v", service.ID, err)
		return fmt.Errorf("%w: build window: %v", ErrInternal, err)
	}

	if window.Start.Before(now) {
		uc.logger.Warn("RescheduleAppointment: start %s is before now %s",
			window.Start.Format(domain.DateTimeFormat), now.Format(domain.DateTimeFormat))
		return ErrPastDate
	}

	if err := provider.ValidateWithinWorkingHours(window); err != nil {
		uc.logger.Warn("RescheduleAppointment: provider id=%d: %v", provider.ID, err)
		return err
	}

	dayStart, dayEnd := domain.DayBounds(window.Start)
	existing, err := uc.appointmentRepo.GetByProviderAndDay(ctx, provider.ID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
	}

	if conflict := domain.FindConflict(window, &appointment.ID, existing); conflict != nil {
		uc.logger.Warn("RescheduleAppointment: window %s-%s conflicts with appointment id=%d",
			window.StartTime(), window.EndTime(), conflict.ID)
		uc.metrics.ConflictRejected(strconv.FormatInt(provider.ID, 10))
		return ErrSchedulingConflict
	}

	appointment.Start = window.Start
	appointment.ServiceDurationMinutes = service.DurationMinutes
	return nil
}

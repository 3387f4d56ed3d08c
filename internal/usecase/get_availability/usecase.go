package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
)

// UseCase use case для расчета занятых слотов мастера на дату
type UseCase struct {
	providerRepo    ProviderRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:    providerRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case. Только чтение, повторные вызовы дают одинаковый результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Availability, error) {
	uc.logger.Info("GetAvailability: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailability: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailability: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Проверяем рабочие часы
	if !provider.HasWorkingHours() {
		uc.logger.Warn("GetAvailability: provider id=%d has no working hours", req.ProviderID)
		return nil, ErrNoWorkingHours
	}

	// 4. Получаем записи мастера за день
	dayStart, dayEnd := domain.DayBounds(req.Date)
	appointments, err := uc.appointmentRepo.GetByProviderAndDay(ctx, req.ProviderID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Раскладываем записи на слоты
	occupied := occupiedSlots(dayStart, provider, appointments)

	uc.logger.Info("GetAvailability: provider=%d, date=%s, occupied=%d",
		req.ProviderID, dayStart.Format(domain.DateFormat), len(occupied))

	return &domain.Availability{
		ProviderID:    provider.ID,
		Date:          dayStart,
		WorkStart:     provider.WorkStart,
		WorkEnd:       provider.WorkEnd,
		SlotMinutes:   domain.SlotMinutes,
		OccupiedSlots: occupied,
	}, nil
}

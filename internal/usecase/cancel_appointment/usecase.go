package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case для отмены записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит запись из SCHEDULED в CANCELLED. Отменённая запись освобождает окно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CancelAppointment: appointment=%d", req.AppointmentID)

	if req.AppointmentID <= 0 {
		return nil, domain.Errorf(domain.ErrValidation, "appointmentId is required")
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		if err := appointment.CanBeCancelled(); err != nil {
			uc.logger.Warn("CancelAppointment: appointment id=%d: %v", appointment.ID, err)
			return err
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appointment.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelAppointment: failed to update status of appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		appointment.Status = domain.StatusCancelled
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.AppointmentCancelled(strconv.FormatInt(result.ProviderID, 10))
	uc.logger.Info("CancelAppointment: successfully cancelled appointment id=%d", result.ID)

	return result, nil
}

package pay_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-SchedulingService/pkg/clock"
)

// UseCase use case для оплаты записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute записывает оплату и завершает запись в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayAppointment: appointment=%d, amount=%.2f, method=%s", req.AppointmentID, req.Amount, req.Method)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PayAppointment: validation failed: %v", err)
		return nil, err
	}

	paidAt := uc.timeProvider.Now()
	if req.PaidAt != nil {
		paidAt = clock.WallClock(*req.PaidAt)
	}

	var result *Response

	// 2. Оплата и смена статуса в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Запись с блокировкой строки
		appointment, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("PayAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("PayAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		// 2.2. Статус записи
		if err := appointment.CanBePaid(); err != nil {
			uc.logger.Warn("PayAppointment: appointment id=%d: %v", appointment.ID, err)
			return err
		}

		// 2.3. Повторная оплата
		exists, err := uc.paymentRepo.ExistsByAppointmentID(txCtx, appointment.ID)
		if err != nil {
			uc.logger.Error("PayAppointment: failed to check payment for appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to check payment: %w", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("PayAppointment: appointment id=%d already has a payment", appointment.ID)
			return ErrDuplicatePayment
		}

		// 2.4. Способ оплаты
		method, err := domain.ParsePaymentMethod(req.Method)
		if err != nil {
			uc.logger.Warn("PayAppointment: %v", err)
			return err
		}

		// 2.5. Сохраняем оплату
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			AppointmentID: appointment.ID,
			AmountCharged: req.Amount,
			Method:        method,
			PaidAt:        paidAt,
			Note:          req.Note,
		})
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentExists) {
				uc.logger.Warn("PayAppointment: concurrent payment for appointment id=%d", appointment.ID)
				return ErrDuplicatePayment
			}
			if errors.Is(err, paymentRepo.ErrInvalidAmount) {
				uc.logger.Warn("PayAppointment: amount %v rejected: %v", req.Amount, err)
				return ErrInvalidAmount
			}
			uc.logger.Error("PayAppointment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %w", ErrInternal, err)
		}

		// 2.6. Завершаем запись
		if err := uc.appointmentRepo.UpdateStatus(txCtx, appointment.ID, domain.StatusCompleted); err != nil {
			uc.logger.Error("PayAppointment: failed to complete appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to complete appointment: %w", ErrInternal, err)
		}
		appointment.Status = domain.StatusCompleted

		result = &Response{Payment: payment, Appointment: appointment}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.PaymentRecorded(string(result.Payment.Method))
	uc.logger.Info("PayAppointment: payment id=%d recorded, appointment id=%d completed",
		result.Payment.ID, result.Appointment.ID)

	return result, nil
}

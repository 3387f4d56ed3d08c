package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// Service сервис чтения записей
type Service struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией по клиенту, мастеру, статусу и периоду
//
// Примеры:
// - Все записи: List(ctx, &ListAppointmentsRequest{})
// - Записи клиента: указать CustomerID
// - Активные записи мастера: ProviderID и Status = "SCHEDULED"
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: customer=%v, provider=%v, status=%v", req.CustomerID, req.ProviderID, req.Status)

	filter := domain.AppointmentsFilter{
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		From:       req.From,
		To:         req.To,
	}

	// Статус разбирается строго: неизвестное значение - ошибка валидации
	if req.Status != nil {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q", *req.Status)
			return nil, err
		}
		filter.Status = &status
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: invalid range %s - %s", req.From, req.To)
		return nil, ErrInvalidTimeRange
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetPayment получает оплату записи
func (s *Service) GetPayment(ctx context.Context, appointmentID int64) (*models.PaymentResponse, error) {
	s.logger.Info("GetPayment: fetching payment for appointment id=%d", appointmentID)

	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetPayment: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetPayment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetPayment - repository error: %v", ErrInternal, err)
	}

	payment, err := s.paymentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetPayment: appointment id=%d has no payment", appointmentID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetPayment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetPayment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

const (
	route = "POST /appointments"

	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с разбором даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, domain.ErrSchedulingConflict) {
			h.logger.Warn("%s - Conflict: provider_id=%d, start=%s", route, req.ProviderID, req.Start)
		}
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Appointment created: appointment_id=%d, customer_id=%d, provider_id=%d",
		route, appointment.ID, appointment.CustomerID, appointment.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(appointment))
}

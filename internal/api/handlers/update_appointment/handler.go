package update_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

const (
	route = "PATCH /appointments/{id}"

	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: appointment_id=%d, error=%v", route, appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Appointment updated: appointment_id=%d, status=%s", route, appointment.ID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(appointment))
}

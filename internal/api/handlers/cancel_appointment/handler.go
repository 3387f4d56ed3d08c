package cancel_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	cancelAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_appointment"
)

const route = "PATCH /appointments/{id}/cancel"

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{AppointmentID: appointmentID})
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Appointment cancelled: appointment_id=%d", route, appointmentID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(appointment))
}

package get_appointment_payment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const route = "GET /appointments/{id}/payment"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), appointmentID)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, payment)
}

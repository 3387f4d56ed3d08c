package get_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const route = "GET /appointments/{id}"

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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointment)
}

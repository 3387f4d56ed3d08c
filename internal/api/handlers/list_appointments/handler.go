package list_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

const route = "GET /appointments"

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

// Handle GET /api/v1/appointments
// Query params (все опциональны): customerId, providerId, status, from, to (YYYY-MM-DDTHH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Found %d appointments", route, len(list.Appointments))
	handlers.RespondJSON(w, http.StatusOK, list)
}

func parseQuery(r *http.Request) (*models.ListAppointmentsRequest, error) {
	q := r.URL.Query()
	req := &models.ListAppointmentsRequest{}

	var err error
	if req.CustomerID, err = handlers.QueryID(r, "customerId"); err != nil {
		return nil, err
	}
	if req.ProviderID, err = handlers.QueryID(r, "providerId"); err != nil {
		return nil, err
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}
	if req.From, err = optionalDateTime("from", q.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = optionalDateTime("to", q.Get("to")); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalDateTime(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := handlers.ParseDateTime(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
)

const (
	route = "GET /providers/{id}/availability"

	msgMissingDate = "date is required"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("%s - Missing date: provider_id=%d", route, providerID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate("date", dateStr)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	availability, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - provider_id=%d, date=%s, occupied=%d",
		route, providerID, date.Format(domain.DateFormat), len(availability.OccupiedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(availability))
}

// Package providers HTTP обработчики управления мастерами
package providers

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/providers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const route = "POST /providers"

	var req models.CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	provider, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Provider created: provider_id=%d", route, provider.ID)
	handlers.RespondJSON(w, http.StatusCreated, provider)
}

// List GET /api/v1/providers
// Query params: active=true - только активные
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const route = "GET /providers"

	activeOnly := r.URL.Query().Get("active") == "true"
	list, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/providers/{providerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const route = "GET /providers/{id}"

	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	provider, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, provider)
}

// Update PUT /api/v1/providers/{providerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /providers/{id}"

	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	var req models.UpdateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: provider_id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	provider, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Provider updated: provider_id=%d", route, id)
	handlers.RespondJSON(w, http.StatusOK, provider)
}

// Deactivate DELETE /api/v1/providers/{providerId}
// Мастер не удаляется, а помечается неактивным
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /providers/{id}"

	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Provider deactivated: provider_id=%d", route, id)
	w.WriteHeader(http.StatusNoContent)
}

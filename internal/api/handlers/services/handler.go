package services

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const route = "POST /services"

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	service, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Service created: service_id=%d, name=%s", route, service.ID, service.Name)
	handlers.RespondJSON(w, http.StatusCreated, service)
}

// List GET /api/v1/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		handlers.RespondFailure(w, h.logger, "GET /services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/services/{serviceId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const route = "GET /services/{id}"

	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	service, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, service)
}

// Update PUT /api/v1/services/{serviceId}
// Новая длительность меняет вычисляемое окончание уже существующих записей
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /services/{id}"

	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: service_id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	service, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Service updated: service_id=%d", route, id)
	handlers.RespondJSON(w, http.StatusOK, service)
}

// Deactivate DELETE /api/v1/services/{serviceId}
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /services/{id}"

	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Service deactivated: service_id=%d", route, id)
	w.WriteHeader(http.StatusNoContent)
}

package customers

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const route = "POST /customers"

	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Customer created: customer_id=%d", route, customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}

// List GET /api/v1/customers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		handlers.RespondFailure(w, h.logger, "GET /customers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/customers/{customerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const route = "GET /customers/{id}"

	id, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, customer)
}

// Update PUT /api/v1/customers/{customerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /customers/{id}"

	id, err := handlers.PathID(r, "customerId")
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: customer_id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	customer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Customer updated: customer_id=%d", route, id)
	handlers.RespondJSON(w, http.StatusOK, customer)
}

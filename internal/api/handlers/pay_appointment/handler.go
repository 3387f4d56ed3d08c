package pay_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const (
	route = "POST /payments"

	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase PayAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase PayAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PayAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		handlers.RespondFailure(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Payment recorded: payment_id=%d, appointment_id=%d, method=%s",
		route, result.Payment.ID, result.Appointment.ID, result.Payment.Method)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

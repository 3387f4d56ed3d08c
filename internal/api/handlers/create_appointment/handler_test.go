package create_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*domain.Appointment, error) {
	args := m.Called(ctx, req)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	start := time.Date(2099, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createAppointment.Request) bool {
		return req.CustomerID == 1 && req.ProviderID == 2 && req.ServiceID == 3 &&
			req.Start.Equal(start) && req.Note != nil && *req.Note == "fade"
	})).Return(&domain.Appointment{
		ID: 10, CustomerID: 1, ProviderID: 2, ServiceID: 3,
		Start: start, Status: domain.StatusScheduled, ServiceDurationMinutes: 45,
	}, nil)

	rec := post(NewHandler(uc, logger.Nop()),
		`{"customerId":1,"providerId":2,"serviceId":3,"start":"2099-03-10T09:00","note":"fade"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"end":"2099-03-10T09:45"`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing ids",
			body:       `{"start":"2099-03-10T09:00"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message":"customerId must be greater than 0"`,
		},
		{
			name:       "missing start",
			body:       `{"customerId":1,"providerId":2,"serviceId":3}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message":"start is required"`,
		},
		{
			name:       "out of hours",
			body:       `{"customerId":1,"providerId":2,"serviceId":3,"start":"2099-03-10T17:45"}`,
			ucErr:      domain.Errorf(domain.ErrOutOfHours, "appointment must be within working hours 09:00-18:00"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"OUT_OF_HOURS"`,
		},
		{
			name:       "internal error",
			body:       `{"customerId":1,"providerId":2,"serviceId":3,"start":"2099-03-10T10:00"}`,
			ucErr:      errors.New("create_appointment: internal error: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := post(NewHandler(uc, logger.Nop()), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}

package cancel_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/testutil/memstore"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

func seed(store *memstore.Store, status domain.AppointmentStatus) int64 {
	customerID := store.SeedCustomer(domain.Customer{Name: "Ana", Email: "ana@example.com"})
	providerID := store.SeedProvider(domain.Provider{Name: "Carlos", Email: "carlos@example.com", Active: true})
	serviceID := store.SeedService(domain.Service{Name: "Haircut", Price: 40, DurationMinutes: 30, Active: true})
	return store.SeedAppointment(domain.Appointment{
		CustomerID: customerID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Start:      time.Date(2099, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:     status,
	})
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AppointmentStatus
		msg    string
	}{
		{name: "scheduled", status: domain.StatusScheduled},
		{name: "already cancelled", status: domain.StatusCancelled, msg: "appointment is already cancelled"},
		{name: "completed", status: domain.StatusCompleted, msg: "cannot cancel a completed appointment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			id := seed(store, tt.status)
			uc := NewUseCase(store.Appointments(), store, metrics.New("test"), logger.Nop())

			got, err := uc.Execute(context.Background(), &Request{AppointmentID: id})
			if tt.msg != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidState))
				assert.EqualError(t, err, tt.msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, got.Status)

			stored, err := store.Appointments().GetByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, stored.Status)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	store := memstore.New()
	uc := NewUseCase(store.Appointments(), store, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 7})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

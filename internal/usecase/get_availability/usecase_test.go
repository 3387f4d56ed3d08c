package get_availability

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
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var day = time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hh, mm int) time.Time {
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

type fixture struct {
	store      *memstore.Store
	uc         *UseCase
	providerID int64
	customerID int64
	haircut    int64
	coloring   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{store: store}
	f.providerID = store.SeedProvider(domain.Provider{
		Name:      "Carlos",
		Email:     "carlos@example.com",
		WorkStart: types.MustTimeString("09:00"),
		WorkEnd:   types.MustTimeString("18:00"),
		Active:    true,
	})
	f.customerID = store.SeedCustomer(domain.Customer{Name: "Ana", Email: "ana@example.com"})
	f.haircut = store.SeedService(domain.Service{Name: "Haircut", Price: 40, DurationMinutes: 30, Active: true})
	f.coloring = store.SeedService(domain.Service{Name: "Coloring", Price: 120, DurationMinutes: 90, Active: true})
	f.uc = NewUseCase(store.Providers(), store.Appointments(), logger.Nop())
	return f
}

func (f *fixture) book(serviceID int64, start time.Time, status domain.AppointmentStatus) {
	f.store.SeedAppointment(domain.Appointment{
		CustomerID: f.customerID,
		ProviderID: f.providerID,
		ServiceID:  serviceID,
		Start:      start,
		Status:     status,
	})
}

func labels(slots []types.TimeString) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.String())
	}
	return result
}

func TestExecute_SingleAppointment(t *testing.T) {
	f := newFixture(t)
	f.book(f.haircut, at(9, 0), domain.StatusScheduled)

	got, err := f.uc.Execute(context.Background(), &Request{ProviderID: f.providerID, Date: day})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00"}, labels(got.OccupiedSlots))
	assert.Equal(t, domain.SlotMinutes, got.SlotMinutes)
	assert.Equal(t, types.MustTimeString("09:00"), got.WorkStart)
	assert.Equal(t, types.MustTimeString("18:00"), got.WorkEnd)
	assert.True(t, got.Date.Equal(day))
}

func TestExecute_TilesAndMerges(t *testing.T) {
	f := newFixture(t)
	f.book(f.coloring, at(10, 0), domain.StatusScheduled)
	f.book(f.haircut, at(10, 30), domain.StatusScheduled)
	f.book(f.haircut, at(14, 15), domain.StatusScheduled)
	f.book(f.haircut, at(16, 0), domain.StatusCancelled)
	f.book(f.haircut, at(17, 0), domain.StatusCompleted)

	got, err := f.uc.Execute(context.Background(), &Request{ProviderID: f.providerID, Date: at(13, 0)})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "14:15"}, labels(got.OccupiedSlots))
}

func TestExecute_ClipsToWorkingHours(t *testing.T) {
	f := newFixture(t)
	f.book(f.coloring, at(17, 0), domain.StatusScheduled)

	got, err := f.uc.Execute(context.Background(), &Request{ProviderID: f.providerID, Date: day})
	require.NoError(t, err)

	assert.Equal(t, []string{"17:00", "17:30"}, labels(got.OccupiedSlots))
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.book(f.coloring, at(9, 30), domain.StatusScheduled)

	req := &Request{ProviderID: f.providerID, Date: day}
	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_EmptyDay(t *testing.T) {
	f := newFixture(t)
	f.book(f.haircut, at(9, 0).AddDate(0, 0, 1), domain.StatusScheduled)

	got, err := f.uc.Execute(context.Background(), &Request{ProviderID: f.providerID, Date: day})
	require.NoError(t, err)

	assert.Empty(t, got.OccupiedSlots)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)
	noHours := f.store.SeedProvider(domain.Provider{Name: "Rui", Email: "rui@example.com", Active: true})

	tests := []struct {
		name string
		req  *Request
		kind error
	}{
		{name: "missing provider id", req: &Request{Date: day}, kind: domain.ErrValidation},
		{name: "missing date", req: &Request{ProviderID: f.providerID}, kind: domain.ErrValidation},
		{name: "unknown provider", req: &Request{ProviderID: 999, Date: day}, kind: domain.ErrNotFound},
		{name: "no working hours", req: &Request{ProviderID: noHours, Date: day}, kind: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

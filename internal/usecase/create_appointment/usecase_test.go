package create_appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/testutil/memstore"
	"github.com/m04kA/SMC-SchedulingService/pkg/clock"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	day = time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)
	now = time.Date(2099, 3, 9, 12, 0, 0, 0, time.UTC)
)

func at(hh, mm int) time.Time {
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

type fixture struct {
	store      *memstore.Store
	metrics    *metrics.Metrics
	uc         *UseCase
	customerID int64
	providerID int64
	haircut    int64
	coloring   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{store: store, metrics: metrics.New("test")}
	f.customerID = store.SeedCustomer(domain.Customer{Name: "Ana", Email: "ana@example.com"})
	f.providerID = store.SeedProvider(domain.Provider{
		Name:      "Carlos",
		Email:     "carlos@example.com",
		WorkStart: types.MustTimeString("09:00"),
		WorkEnd:   types.MustTimeString("18:00"),
		Active:    true,
	})
	f.haircut = store.SeedService(domain.Service{Name: "Haircut", Price: 40, DurationMinutes: 30, Active: true})
	f.coloring = store.SeedService(domain.Service{Name: "Coloring", Price: 120, DurationMinutes: 90, Active: true})

	f.uc = NewUseCase(
		store.Appointments(),
		store.Providers(),
		store.Services(),
		store.Customers(),
		store,
		clock.Fixed{T: now},
		f.metrics,
		logger.Nop(),
	)
	return f
}

func (f *fixture) request(serviceID int64, start time.Time) *Request {
	return &Request{
		CustomerID: f.customerID,
		ProviderID: f.providerID,
		ServiceID:  serviceID,
		Start:      start,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	req := f.request(f.haircut, at(9, 0).Add(42*time.Second))
	req.Note = ptr.Ptr("first visit")

	got, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotZero(t, got.ID)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.True(t, got.Start.Equal(at(9, 0)))
	assert.True(t, got.End().Equal(at(9, 30)))
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, "Carlos", got.ProviderName)
	assert.Equal(t, "Haircut", got.ServiceName)
	assert.Equal(t, 40.0, got.ServicePrice)
	assert.Equal(t, "first visit", ptr.Deref(got.Note))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AppointmentsCreated.WithLabelValues("2")))
}

func TestExecute_ConflictScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request(f.haircut, at(9, 0)))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(f.haircut, at(9, 15)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchedulingConflict))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ConflictsRejected.WithLabelValues("2")))

	// touching windows do not overlap
	_, err = f.uc.Execute(ctx, f.request(f.haircut, at(9, 30)))
	require.NoError(t, err)
}

func TestExecute_LongServiceBlocksFollowingSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request(f.coloring, at(10, 0)))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(f.haircut, at(11, 0)))
	assert.True(t, errors.Is(err, domain.ErrSchedulingConflict))

	_, err = f.uc.Execute(ctx, f.request(f.haircut, at(11, 30)))
	require.NoError(t, err)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	f.store.SeedAppointment(domain.Appointment{
		CustomerID: f.customerID,
		ProviderID: f.providerID,
		ServiceID:  f.haircut,
		Start:      at(9, 0),
		Status:     domain.StatusCancelled,
	})

	_, err := f.uc.Execute(context.Background(), f.request(f.haircut, at(9, 0)))
	require.NoError(t, err)
}

func TestExecute_WorkingHours(t *testing.T) {
	tests := []struct {
		name    string
		service func(f *fixture) int64
		start   time.Time
		kind    error
	}{
		{name: "ends after closing", service: func(f *fixture) int64 { return f.haircut }, start: at(17, 45), kind: domain.ErrOutOfHours},
		{name: "starts at closing", service: func(f *fixture) int64 { return f.haircut }, start: at(18, 0), kind: domain.ErrOutOfHours},
		{name: "starts before opening", service: func(f *fixture) int64 { return f.haircut }, start: at(8, 45), kind: domain.ErrOutOfHours},
		{name: "long service past closing", service: func(f *fixture) int64 { return f.coloring }, start: at(17, 0), kind: domain.ErrOutOfHours},
		{name: "ends exactly at closing", service: func(f *fixture) int64 { return f.haircut }, start: at(17, 30)},
		{name: "starts exactly at opening", service: func(f *fixture) int64 { return f.haircut }, start: at(9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.Execute(context.Background(), f.request(tt.service(f), tt.start))
			if tt.kind == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)
	inactiveProvider := f.store.SeedProvider(domain.Provider{
		Name:      "Rui",
		Email:     "rui@example.com",
		WorkStart: types.MustTimeString("09:00"),
		WorkEnd:   types.MustTimeString("18:00"),
	})
	inactiveService := f.store.SeedService(domain.Service{Name: "Shave", Price: 20, DurationMinutes: 30})

	tests := []struct {
		name   string
		mutate func(r *Request)
		kind   error
		msg    string
	}{
		{name: "missing customer id", mutate: func(r *Request) { r.CustomerID = 0 }, kind: domain.ErrValidation, msg: "customerId is required"},
		{name: "unknown customer", mutate: func(r *Request) { r.CustomerID = 999 }, kind: domain.ErrNotFound, msg: "customer not found"},
		{name: "unknown provider", mutate: func(r *Request) { r.ProviderID = 999 }, kind: domain.ErrNotFound, msg: "provider not found"},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = 999 }, kind: domain.ErrNotFound, msg: "service not found"},
		{name: "missing start", mutate: func(r *Request) { r.Start = time.Time{} }, kind: domain.ErrValidation, msg: "start is required"},
		{name: "past start", mutate: func(r *Request) { r.Start = now.Add(-time.Hour) }, kind: domain.ErrPastDate},
		{name: "inactive provider", mutate: func(r *Request) { r.ProviderID = inactiveProvider }, kind: domain.ErrInvalidState, msg: "provider is inactive"},
		{name: "inactive service", mutate: func(r *Request) { r.ServiceID = inactiveService }, kind: domain.ErrInvalidState, msg: "service is inactive"},
		{name: "note too long", mutate: func(r *Request) { r.Note = ptr.Ptr(string(make([]byte, domain.MaxNoteLength+1))) }, kind: domain.ErrValidation},
		{name: "not found wins over missing start", mutate: func(r *Request) { r.ServiceID = 999; r.Start = time.Time{} }, kind: domain.ErrNotFound},
		{name: "past wins over out of hours", mutate: func(r *Request) { r.Start = now.Add(-12 * time.Hour) }, kind: domain.ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(f.haircut, at(10, 0))
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
			}
		})
	}
}

func TestExecute_StartedMinuteIsPast(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = clock.Fixed{T: at(10, 0).Add(45 * time.Second)}

	_, err := f.uc.Execute(context.Background(), f.request(f.haircut, at(10, 0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPastDate), "got %v", err)

	_, err = f.uc.Execute(context.Background(), f.request(f.haircut, at(10, 1)))
	require.NoError(t, err)
}

func TestExecute_NoteLengthCountsCharacters(t *testing.T) {
	f := newFixture(t)

	req := f.request(f.haircut, at(10, 0))
	req.Note = ptr.Ptr(strings.Repeat("ã", domain.MaxNoteLength))

	got, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxNoteLength, utf8.RuneCountInString(ptr.Deref(got.Note)))

	req = f.request(f.haircut, at(11, 0))
	req.Note = ptr.Ptr(strings.Repeat("ã", domain.MaxNoteLength+1))

	_, err = f.uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.EqualError(t, err, "note must be at most 500 characters")
}

func TestExecute_NoOverlapAfterAnySequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	services := []int64{f.haircut, f.coloring}
	for i := 0; i < 60; i++ {
		start := at(9, 0).Add(time.Duration((i*35)%(9*60)) * time.Minute)
		_, _ = f.uc.Execute(ctx, f.request(services[i%2], start))
	}

	dayStart, dayEnd := domain.DayBounds(day)
	all, err := f.store.Appointments().GetByProviderAndDay(ctx, f.providerID, dayStart, dayEnd)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Window().Overlaps(all[j].Window()),
				"appointments %d and %d overlap", all[i].ID, all[j].ID)
		}
	}
}

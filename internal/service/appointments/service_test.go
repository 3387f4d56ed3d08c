package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/internal/testutil/memstore"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fixture struct {
	store    *memstore.Store
	svc      *Service
	ana      int64
	bruno    int64
	carlos   int64
	haircut  int64
	firstID  int64
	secondID int64
	thirdID  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{store: store}
	f.ana = store.SeedCustomer(domain.Customer{Name: "Ana", Email: "ana@example.com"})
	f.bruno = store.SeedCustomer(domain.Customer{Name: "Bruno", Email: "bruno@example.com"})
	f.carlos = store.SeedProvider(domain.Provider{Name: "Carlos", Email: "carlos@example.com", Active: true})
	f.haircut = store.SeedService(domain.Service{Name: "Haircut", Price: 40, DurationMinutes: 30, Active: true})

	day := time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)
	f.firstID = store.SeedAppointment(domain.Appointment{
		CustomerID: f.ana, ProviderID: f.carlos, ServiceID: f.haircut,
		Start: day.Add(9 * time.Hour), Status: domain.StatusScheduled,
	})
	f.secondID = store.SeedAppointment(domain.Appointment{
		CustomerID: f.bruno, ProviderID: f.carlos, ServiceID: f.haircut,
		Start: day.Add(10 * time.Hour), Status: domain.StatusCancelled,
	})
	f.thirdID = store.SeedAppointment(domain.Appointment{
		CustomerID: f.ana, ProviderID: f.carlos, ServiceID: f.haircut,
		Start: day.Add(26 * time.Hour), Status: domain.StatusCompleted,
	})

	f.svc = NewService(store.Appointments(), store.Payments(), logger.Nop())
	return f
}

func ids(resp *models.AppointmentListResponse) []int64 {
	result := make([]int64, 0, len(resp.Appointments))
	for _, a := range resp.Appointments {
		result = append(result, a.ID)
	}
	return result
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.GetByID(context.Background(), f.firstID)
	require.NoError(t, err)

	assert.Equal(t, "2099-03-10T09:00", got.Start)
	assert.Equal(t, "2099-03-10T09:30", got.End)
	assert.Equal(t, "SCHEDULED", got.Status)
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, "Haircut", got.ServiceName)
	assert.Equal(t, 30, got.DurationMinutes)

	_, err = f.svc.GetByID(context.Background(), 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.svc.List(ctx, &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.firstID, f.secondID, f.thirdID}, ids(all))

	byCustomer, err := f.svc.List(ctx, &models.ListAppointmentsRequest{CustomerID: ptr.Ptr(f.ana)})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.firstID, f.thirdID}, ids(byCustomer))

	byStatus, err := f.svc.List(ctx, &models.ListAppointmentsRequest{
		ProviderID: ptr.Ptr(f.carlos),
		Status:     ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.secondID}, ids(byStatus))

	from := time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	byRange, err := f.svc.List(ctx, &models.ListAppointmentsRequest{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.firstID, f.secondID}, ids(byRange))

	empty, err := f.svc.List(ctx, &models.ListAppointmentsRequest{CustomerID: ptr.Ptr(int64(999))})
	require.NoError(t, err)
	assert.NotNil(t, empty.Appointments)
	assert.Empty(t, empty.Appointments)
}

func TestList_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{Status: ptr.Ptr("PENDING")})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	from := time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.List(context.Background(), &models.ListAppointmentsRequest{From: &from, To: &from})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestGetPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Payments().Create(ctx, &domain.Payment{
		AppointmentID: f.thirdID,
		AmountCharged: 40,
		Method:        domain.MethodCreditCard,
		PaidAt:        time.Date(2099, 3, 11, 2, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := f.svc.GetPayment(ctx, f.thirdID)
	require.NoError(t, err)
	assert.Equal(t, "CARTAO_CREDITO", got.Method)
	assert.Equal(t, "2099-03-11T02:45", got.PaidAt)

	_, err = f.svc.GetPayment(ctx, f.firstID)
	assert.True(t, errors.Is(err, ErrPaymentNotFound))

	_, err = f.svc.GetPayment(ctx, 999)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}

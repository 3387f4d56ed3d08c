// Package memstore is an in-memory stand-in for the postgres repositories,
// used by usecase and service tests. Transactions are serialized and rolled
// back by restoring a snapshot.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	paymentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/payment"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
)

type data struct {
	providers        map[int64]domain.Provider
	providerServices map[int64][]int64
	services         map[int64]domain.Service
	customers        map[int64]domain.Customer
	appointments     map[int64]domain.Appointment
	payments         map[int64]domain.Payment
	nextID           int64
}

func (d *data) clone() *data {
	c := &data{
		providers:        make(map[int64]domain.Provider, len(d.providers)),
		providerServices: make(map[int64][]int64, len(d.providerServices)),
		services:         make(map[int64]domain.Service, len(d.services)),
		customers:        make(map[int64]domain.Customer, len(d.customers)),
		appointments:     make(map[int64]domain.Appointment, len(d.appointments)),
		payments:         make(map[int64]domain.Payment, len(d.payments)),
		nextID:           d.nextID,
	}
	for k, v := range d.providers {
		c.providers[k] = v
	}
	for k, v := range d.providerServices {
		c.providerServices[k] = append([]int64(nil), v...)
	}
	for k, v := range d.services {
		c.services[k] = v
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	for k, v := range d.appointments {
		c.appointments[k] = v
	}
	for k, v := range d.payments {
		c.payments[k] = v
	}
	return c
}

// Store holds every table. Use the accessor methods to get repository views.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	d    *data

	// Now stamps created_at/updated_at
	Now func() time.Time
}

// New returns an empty store
func New() *Store {
	return &Store{
		d: (&data{nextID: 0}).clone(),
		Now: func() time.Time {
			return time.Date(2099, 1, 1, 8, 0, 0, 0, time.UTC)
		},
	}
}

func (s *Store) id() int64 {
	s.d.nextID++
	return s.d.nextID
}

type txKey struct{}

// DoSerializable runs fn under a store-wide lock and restores the snapshot when fn fails.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.d.clone()
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.d = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Do is DoSerializable; the store has a single isolation level.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.DoSerializable(ctx, fn)
}

// SeedProvider inserts p as-is and returns its id
func (s *Store) SeedProvider(p domain.Provider) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.d.providers[p.ID] = p
	s.d.providerServices[p.ID] = append([]int64(nil), p.ServiceIDs...)
	return p.ID
}

// SeedService inserts svc as-is and returns its id
func (s *Store) SeedService(svc domain.Service) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = s.id()
	s.d.services[svc.ID] = svc
	return svc.ID
}

// SeedCustomer inserts c as-is and returns its id
func (s *Store) SeedCustomer(c domain.Customer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.d.customers[c.ID] = c
	return c.ID
}

// SeedAppointment inserts a as-is and returns its id
func (s *Store) SeedAppointment(a domain.Appointment) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	s.d.appointments[a.ID] = a
	return a.ID
}

// PaymentCount returns the number of stored payments
func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.d.payments)
}

// Appointments returns the appointment repository view
func (s *Store) Appointments() *Appointments { return &Appointments{s: s} }

// Providers returns the provider repository view
func (s *Store) Providers() *Providers { return &Providers{s: s} }

// Services returns the catalog repository view
func (s *Store) Services() *Services { return &Services{s: s} }

// Customers returns the customer repository view
func (s *Store) Customers() *Customers { return &Customers{s: s} }

// Payments returns the payment repository view
func (s *Store) Payments() *Payments { return &Payments{s: s} }

// Appointments mirrors appointment.Repository
type Appointments struct{ s *Store }

func (r *Appointments) project(a domain.Appointment) *domain.Appointment {
	a.CustomerName = r.s.d.customers[a.CustomerID].Name
	a.ProviderName = r.s.d.providers[a.ProviderID].Name
	svc := r.s.d.services[a.ServiceID]
	a.ServiceName = svc.Name
	a.ServicePrice = svc.Price
	a.ServiceDurationMinutes = svc.DurationMinutes
	return &a
}

func (r *Appointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, okC := r.s.d.customers[a.CustomerID]
	_, okP := r.s.d.providers[a.ProviderID]
	_, okS := r.s.d.services[a.ServiceID]
	if !okC || !okP || !okS {
		return nil, appointmentRepo.ErrInvalidReference
	}

	created := *a
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	created.UpdatedAt = created.CreatedAt
	r.s.d.appointments[created.ID] = created
	return &created, nil
}

func (r *Appointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.d.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return r.project(a), nil
}

func (r *Appointments) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.GetByID(ctx, id)
}

func (r *Appointments) GetByProviderAndDay(_ context.Context, providerID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*domain.Appointment
	for _, a := range r.s.d.appointments {
		if a.ProviderID == providerID && !a.Start.Before(dayStart) && a.Start.Before(dayEnd) {
			result = append(result, r.project(a))
		}
	}
	sortAppointments(result)
	return result, nil
}

func (r *Appointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*domain.Appointment
	for _, a := range r.s.d.appointments {
		if filter.CustomerID != nil && a.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ProviderID != nil && a.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.From != nil && a.Start.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !a.Start.Before(*filter.To) {
			continue
		}
		result = append(result, r.project(a))
	}
	sortAppointments(result)
	return result, nil
}

func (r *Appointments) Update(_ context.Context, a *domain.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.appointments[a.ID]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	stored.Start = a.Start
	stored.Status = a.Status
	stored.Note = a.Note
	stored.UpdatedAt = r.s.Now()
	r.s.d.appointments[a.ID] = stored
	a.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *Appointments) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	stored.Status = status
	stored.UpdatedAt = r.s.Now()
	r.s.d.appointments[id] = stored
	return nil
}

func sortAppointments(list []*domain.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Start.Equal(list[j].Start) {
			return list[i].ID < list[j].ID
		}
		return list[i].Start.Before(list[j].Start)
	})
}

// Providers mirrors provider.Repository
type Providers struct{ s *Store }

func (r *Providers) Create(_ context.Context, p *domain.Provider) (*domain.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *p
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	created.UpdatedAt = created.CreatedAt
	created.ServiceIDs = nil
	r.s.d.providers[created.ID] = created
	return &created, nil
}

func (r *Providers) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.d.providers[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	p.ServiceIDs = append([]int64(nil), r.s.d.providerServices[id]...)
	return &p, nil
}

func (r *Providers) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Provider, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ServiceIDs = nil
	return p, nil
}

func (r *Providers) List(_ context.Context, activeOnly bool) ([]*domain.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*domain.Provider
	for _, p := range r.s.d.providers {
		if activeOnly && !p.Active {
			continue
		}
		p := p
		p.ServiceIDs = append([]int64(nil), r.s.d.providerServices[p.ID]...)
		result = append(result, &p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *Providers) Update(_ context.Context, p *domain.Provider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.providers[p.ID]
	if !ok {
		return providerRepo.ErrProviderNotFound
	}
	stored.Name = p.Name
	stored.Phone = p.Phone
	stored.Email = p.Email
	stored.WorkStart = p.WorkStart
	stored.WorkEnd = p.WorkEnd
	stored.UpdatedAt = r.s.Now()
	r.s.d.providers[p.ID] = stored
	return nil
}

func (r *Providers) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.providers[id]
	if !ok {
		return providerRepo.ErrProviderNotFound
	}
	stored.Active = active
	r.s.d.providers[id] = stored
	return nil
}

func (r *Providers) GetServiceIDs(_ context.Context, providerID int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]int64(nil), r.s.d.providerServices[providerID]...), nil
}

func (r *Providers) SetServices(_ context.Context, providerID int64, serviceIDs []int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[int64]bool, len(serviceIDs))
	ids := make([]int64, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if _, ok := r.s.d.services[id]; !ok {
			return providerRepo.ErrUnknownService
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	r.s.d.providerServices[providerID] = ids
	return nil
}

// Services mirrors catalog.Repository
type Services struct{ s *Store }

func (r *Services) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.services {
		if domain.SameName(existing.Name, svc.Name) {
			return nil, catalogRepo.ErrNameTaken
		}
	}
	created := *svc
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	created.UpdatedAt = created.CreatedAt
	r.s.d.services[created.ID] = created
	return &created, nil
}

func (r *Services) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.d.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &svc, nil
}

func (r *Services) ExistsByName(_ context.Context, name string, excludeID *int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, svc := range r.s.d.services {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if domain.SameName(svc.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Services) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*domain.Service
	for _, svc := range r.s.d.services {
		if activeOnly && !svc.Active {
			continue
		}
		svc := svc
		result = append(result, &svc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *Services) Update(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.services[svc.ID]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	stored.Name = svc.Name
	stored.Description = svc.Description
	stored.Price = svc.Price
	stored.DurationMinutes = svc.DurationMinutes
	stored.UpdatedAt = r.s.Now()
	r.s.d.services[svc.ID] = stored
	return nil
}

func (r *Services) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.services[id]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	stored.Active = active
	r.s.d.services[id] = stored
	return nil
}

// Customers mirrors customer.Repository
type Customers struct{ s *Store }

func (r *Customers) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.customers {
		if strings.EqualFold(existing.Email, c.Email) {
			return nil, customerRepo.ErrEmailTaken
		}
	}
	created := *c
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	r.s.d.customers[created.ID] = created
	return &created, nil
}

func (r *Customers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.d.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *Customers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.d.customers {
		if strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Customers) ExistsByEmailExcluding(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.d.customers {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Customers) Update(_ context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.customers[c.ID]
	if !ok {
		return customerRepo.ErrCustomerNotFound
	}
	for _, existing := range r.s.d.customers {
		if existing.ID != c.ID && strings.EqualFold(existing.Email, c.Email) {
			return customerRepo.ErrEmailTaken
		}
	}
	stored.Name = c.Name
	stored.Email = c.Email
	stored.Phone = c.Phone
	r.s.d.customers[c.ID] = stored
	return nil
}

func (r *Customers) List(_ context.Context) ([]*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*domain.Customer
	for _, c := range r.s.d.customers {
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Payments mirrors payment.Repository
type Payments struct{ s *Store }

func (r *Payments) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.payments {
		if existing.AppointmentID == p.AppointmentID {
			return nil, paymentRepo.ErrPaymentExists
		}
	}
	created := *p
	created.ID = r.s.id()
	r.s.d.payments[created.ID] = created
	return &created, nil
}

func (r *Payments) ExistsByAppointmentID(_ context.Context, appointmentID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.d.payments {
		if p.AppointmentID == appointmentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Payments) GetByAppointmentID(_ context.Context, appointmentID int64) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.d.payments {
		if p.AppointmentID == appointmentID {
			p := p
			return &p, nil
		}
	}
	return nil, paymentRepo.ErrPaymentNotFound
}

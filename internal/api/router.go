// Package api собирает HTTP маршруты сервиса
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	customersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/customers"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getAppointmentPaymentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment_payment"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	listAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_appointments"
	payAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/pay_appointment"
	providersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/providers"
	servicesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/services"
	updateAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

// Handlers набор обработчиков всех эндпоинтов
type Handlers struct {
	CreateAppointment     *createAppointmentHandler.Handler
	ListAppointments      *listAppointmentsHandler.Handler
	GetAppointment        *getAppointmentHandler.Handler
	UpdateAppointment     *updateAppointmentHandler.Handler
	CancelAppointment     *cancelAppointmentHandler.Handler
	GetAppointmentPayment *getAppointmentPaymentHandler.Handler
	PayAppointment        *payAppointmentHandler.Handler
	GetAvailability       *getAvailabilityHandler.Handler
	Providers             *providersHandler.Handler
	Services              *servicesHandler.Handler
	Customers             *customersHandler.Handler
}

// AuthOptions настройки проверки токенов
type AuthOptions struct {
	Enabled bool
	Secret  []byte
	Issuer  string
}

// Options параметры роутера
type Options struct {
	Auth        AuthOptions
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
	// HealthCheck проверка зависимостей для /healthz (nil - всегда ok)
	HealthCheck func(ctx context.Context) error
	Logger      middleware.Logger
}

// NewRouter регистрирует маршруты /api/v1, /healthz и /metrics
func NewRouter(h *Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID, middleware.Logging(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, opts.Metrics.Handler()).Methods(http.MethodGet)
	}
	r.Use(middleware.Recover(opts.Logger))

	r.HandleFunc("/healthz", healthz(opts.HealthCheck)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Изменение каталога и мастеров доступно только администратору
	admin := func(f http.HandlerFunc) http.Handler { return f }
	if opts.Auth.Enabled {
		v1.Use(middleware.Auth(opts.Auth.Secret, opts.Auth.Issuer, opts.Logger))
		requireAdmin := middleware.RequireRole(middleware.RoleAdmin)
		admin = func(f http.HandlerFunc) http.Handler { return requireAdmin(f) }
	}

	// Записи
	v1.HandleFunc("/appointments", h.CreateAppointment.Handle).Methods(http.MethodPost)
	v1.HandleFunc("/appointments", h.ListAppointments.Handle).Methods(http.MethodGet)
	v1.HandleFunc("/appointments/{appointmentId}", h.GetAppointment.Handle).Methods(http.MethodGet)
	v1.HandleFunc("/appointments/{appointmentId}", h.UpdateAppointment.Handle).Methods(http.MethodPatch)
	v1.HandleFunc("/appointments/{appointmentId}/cancel", h.CancelAppointment.Handle).Methods(http.MethodPatch)
	v1.HandleFunc("/appointments/{appointmentId}/payment", h.GetAppointmentPayment.Handle).Methods(http.MethodGet)

	// Оплаты
	v1.HandleFunc("/payments", h.PayAppointment.Handle).Methods(http.MethodPost)

	// Мастера
	v1.Handle("/providers", admin(h.Providers.Create)).Methods(http.MethodPost)
	v1.HandleFunc("/providers", h.Providers.List).Methods(http.MethodGet)
	v1.HandleFunc("/providers/{providerId}", h.Providers.Get).Methods(http.MethodGet)
	v1.Handle("/providers/{providerId}", admin(h.Providers.Update)).Methods(http.MethodPut)
	v1.Handle("/providers/{providerId}", admin(h.Providers.Deactivate)).Methods(http.MethodDelete)
	v1.HandleFunc("/providers/{providerId}/availability", h.GetAvailability.Handle).Methods(http.MethodGet)

	// Услуги
	v1.Handle("/services", admin(h.Services.Create)).Methods(http.MethodPost)
	v1.HandleFunc("/services", h.Services.List).Methods(http.MethodGet)
	v1.HandleFunc("/services/{serviceId}", h.Services.Get).Methods(http.MethodGet)
	v1.Handle("/services/{serviceId}", admin(h.Services.Update)).Methods(http.MethodPut)
	v1.Handle("/services/{serviceId}", admin(h.Services.Deactivate)).Methods(http.MethodDelete)

	// Клиенты
	v1.HandleFunc("/customers", h.Customers.Create).Methods(http.MethodPost)
	v1.HandleFunc("/customers", h.Customers.List).Methods(http.MethodGet)
	v1.HandleFunc("/customers/{customerId}", h.Customers.Get).Methods(http.MethodGet)
	v1.HandleFunc("/customers/{customerId}", h.Customers.Update).Methods(http.MethodPut)

	return r
}

func healthz(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

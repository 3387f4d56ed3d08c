package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Бизнес-метрики
	AppointmentsCreated  *prometheus.CounterVec
	AppointmentsCanceled *prometheus.CounterVec
	ConflictsRejected    *prometheus.CounterVec
	PaymentsRecorded     *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Appointments successfully booked",
			ConstLabels: constLabels,
		}, []string{"provider_id"}),

		AppointmentsCanceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_cancelled_total",
			Help:        "Appointments cancelled",
			ConstLabels: constLabels,
		}, []string{"provider_id"}),

		ConflictsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_conflicts_total",
			Help:        "Create or reschedule attempts rejected by the conflict detector",
			ConstLabels: constLabels,
		}, []string{"provider_id"}),

		PaymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payments_recorded_total",
			Help:        "Payments recorded",
			ConstLabels: constLabels,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.AppointmentsCreated,
		m.AppointmentsCanceled,
		m.ConflictsRejected,
		m.PaymentsRecorded,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery записывает метрики запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// AppointmentCreated увеличивает счетчик созданных записей
func (m *Metrics) AppointmentCreated(providerID string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(providerID).Inc()
}

// AppointmentCancelled увеличивает счетчик отмененных записей
func (m *Metrics) AppointmentCancelled(providerID string) {
	if m == nil {
		return
	}
	m.AppointmentsCanceled.WithLabelValues(providerID).Inc()
}

// ConflictRejected увеличивает счетчик отклоненных из-за пересечения запросов
func (m *Metrics) ConflictRejected(providerID string) {
	if m == nil {
		return
	}
	m.ConflictsRejected.WithLabelValues(providerID).Inc()
}

// PaymentRecorded увеличивает счетчик оплат
func (m *Metrics) PaymentRecorded(method string) {
	if m == nil {
		return
	}
	m.PaymentsRecorded.WithLabelValues(method).Inc()
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetrics получатель метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Metrics считает запросы и латентность по шаблону маршрута,
// чтобы ID в пути не раздували кардинальность
func Metrics(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

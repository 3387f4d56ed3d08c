package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку лога на каждый запрос
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - %d (%s) request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), GetRequestID(r.Context()))
		})
	}
}

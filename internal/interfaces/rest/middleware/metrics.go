package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/ficmart-calculator/internal/telemetry"
)

const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight requests. It must wrap
// the ServeMux directly so the matched route pattern is visible afterwards.
func Metrics(m *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			status := strconv.Itoa(wrapped.statusCode)
			route := routeLabel(r)

			m.RequestsTotal.WithLabelValues(r.Method, route, status).Inc()
			m.RequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		})
	}
}

// routeLabel keeps label cardinality bounded: unknown paths share one label.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" || r.Pattern == "/" {
		return unmatchedRoute
	}
	return r.Pattern
}

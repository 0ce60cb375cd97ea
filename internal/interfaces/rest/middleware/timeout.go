package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"Request timeout"}`

// Timeout bounds each request to timeout. A request that runs longer gets
// 503 with a JSON error body, the same response as application.NewTimeoutError.
// Its context is cancelled. A non-positive timeout disables the bound.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"fyyur/internal/metrics"
)

// Metrics records request counts and latency per matched route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPActiveRequests.Inc()
			defer metrics.HTTPActiveRequests.Dec()

			rw := wrap(w)
			next.ServeHTTP(rw, r)

			// ServeMux fills in the pattern on the request it routed.
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}

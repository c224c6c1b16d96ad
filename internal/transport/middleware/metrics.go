package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/metrics"
)

// Metrics records request counts and latency per matched route. It must wrap
// the ServeMux directly so that r.Pattern is visible after routing.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

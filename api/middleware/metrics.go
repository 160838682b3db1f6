package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brewtrack/brewery-backend/pkg/metrics"
)

// Metrics observes every request once routing has resolved, so the recorded
// path is the route pattern rather than the raw URL.
func Metrics(httpMetrics *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			pattern := ""
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				pattern = routeCtx.RoutePattern()
			}
			httpMetrics.Observe(r.Method, pattern, rec.status, time.Since(start))
		})
	}
}

package controller

import (
	"ledger/pkg/metrics"
	"net/http"
	"time"
)

// WithMetrics returns a middleware that records the request count and latency
// instruments for every handled request. The matched route pattern is used as
// metric label; requests that match no route are labeled with their method only.
func WithMetrics(next http.Handler, httpMetrics *metrics.HTTP) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}

		httpMetrics.Observe(r.Context(), r.Method, pattern, rec.status, time.Since(start).Seconds())
	})
}

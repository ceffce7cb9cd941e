package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymdash/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

// RequestMetrics counts served requests per route template and status.
func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			endpoint := req.URL.Path
			if route := mux.CurrentRoute(req); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					endpoint = tmpl
				}
			}

			resp := &responseWriter{respWriter, http.StatusOK}

			defer func(begin time.Time) {
				metricsManager.HistogramRequestDuration.
					WithLabelValues(endpoint, req.Method).
					Observe(time.Since(begin).Seconds())
				metricsManager.CounterRequests.
					WithLabelValues(endpoint, strconv.Itoa(resp.statusCode)).
					Inc()
			}(time.Now())

			next.ServeHTTP(resp, req)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}

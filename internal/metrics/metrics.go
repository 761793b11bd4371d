// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vantage_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vantage_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	DroppedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vantage_register_dropped_records_total",
		Help: "Raw documents dropped during normalization for missing structural fields.",
	})

	AssistCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vantage_assist_calls_total",
		Help: "AI assistant calls by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Middleware records request counts and latency per chi route pattern.
func Middleware(routePattern func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			route := routePattern(r)
			HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

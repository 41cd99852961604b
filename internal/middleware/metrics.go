package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type httpMetrics struct {
	inFlight prometheus.Gauge
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Metrics instruments every request except the listed infrastructure paths.
func Metrics(reg prometheus.Registerer, skip ...string) func(next http.Handler) http.Handler {
	factory := promauto.With(reg)
	m := httpMetrics{
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		}, []string{"method", "route", "status"}),
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skipped[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			rw := wrapResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := "unknown"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}

			labels := prometheus.Labels{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(rw.status),
			}
			m.total.With(labels).Inc()
			m.duration.With(labels).Observe(time.Since(start).Seconds())
		})
	}
}

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thsampaio/customer-gateway/internal/router"
)

// requestMetrics holds the Prometheus registry and the per-request counter
// exposed on GET /metrics.
type requestMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

func newRequestMetrics() *requestMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "app",
		Name:      "requests_total",
		Help:      "Number all requests",
	}, []string{"method", "endpoint"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests)

	return &requestMetrics{registry: registry, requests: requests}
}

// metricsMiddleware counts every request by method and path before handing
// it downstream. The scrape endpoint counts itself as well.
func (h *Handler) metricsMiddleware() router.Middleware {
	return router.MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		h.metrics.requests.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}

// showMetrics answers GET /metrics in the Prometheus text exposition format.
func (h *Handler) showMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so tests can build independent instances.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	relayOutcomes    *prometheus.CounterVec
	deliveries       *prometheus.CounterVec
	deliveryDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_relay_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "form_relay_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		relayOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_relay_submissions_total",
			Help: "Form submissions by outcome.",
		}, []string{"outcome"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_relay_deliveries_total",
			Help: "Discord webhook deliveries by result.",
		}, []string{"result"}),
		deliveryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "form_relay_delivery_duration_seconds",
			Help:    "Discord webhook delivery latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(m.httpRequests, m.httpDuration, m.relayOutcomes, m.deliveries, m.deliveryDuration)
	return m
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records every request. Unmatched paths are grouped under "unknown".
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveOutcome counts one handled submission, e.g. "delivered" or "unconfigured_form".
func (m *Metrics) ObserveOutcome(outcome string) {
	m.relayOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveDelivery records a webhook call. status is 0 when the request never completed.
func (m *Metrics) ObserveDelivery(status int, elapsed time.Duration, err error) {
	result := "error"
	switch {
	case err != nil:
		result = "transport_error"
	case status >= 200 && status < 300:
		result = "success"
	case status == http.StatusTooManyRequests:
		result = "rate_limited"
	}
	m.deliveries.WithLabelValues(result).Inc()
	m.deliveryDuration.Observe(elapsed.Seconds())
}

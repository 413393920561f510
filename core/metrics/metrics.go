package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trusted"

// Outcome labels for requests.
const (
	OutcomeSuccess  = "success"
	OutcomePartial  = "partial"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	authRejections  *prometheus.CounterVec
	recordsMutated  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Metrics with a fresh registry, including Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Trusted write requests by kind, action and outcome.",
		}, []string{"kind", "action", "outcome"}),
		authRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rejections_total",
			Help:      "Requests rejected by signature verification, by reason.",
		}, []string{"reason"}),
		recordsMutated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_mutated_total",
			Help:      "Records written or deleted by reconcilers.",
		}, []string{"kind", "op"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Trusted write latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind", "action"}),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(kind, action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(kind, action, outcome).Inc()
	m.requestDuration.WithLabelValues(kind, action).Observe(elapsed.Seconds())
}

// AuthRejected records a verification failure.
func (m *Metrics) AuthRejected(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}

// RecordsMutated adds n to the mutation counter. Zero is ignored.
func (m *Metrics) RecordsMutated(kind, op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsMutated.WithLabelValues(kind, op).Add(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

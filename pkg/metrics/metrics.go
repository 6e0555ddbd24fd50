package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the portal's Prometheus collectors.
// All methods are safe on a nil receiver so that components work with metrics disabled.
type Metrics struct {
	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	wizardTransitionsTotal  *prometheus.CounterVec
	batchSize               *prometheus.HistogramVec
}

// New registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the portal.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Calls to the swap-station backend by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Latency of calls to the swap-station backend.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		wizardTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_transitions_total",
			Help:        "Wizard transitions by wizard kind, transition and result.",
			ConstLabels: constLabels,
		}, []string{"wizard", "transition", "result"}),
		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "restock_batch_size",
			Help:        "Number of request rows per reconstructed restock batch.",
			ConstLabels: constLabels,
			Buckets:     []float64{1, 2, 3, 5, 8, 13, 21},
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.wizardTransitionsTotal,
		m.batchSize,
	)
	return m
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream records one call to the backend. outcome is "ok" or an error kind.
func (m *Metrics) ObserveUpstream(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncWizardTransition counts one wizard transition attempt.
func (m *Metrics) IncWizardTransition(wizard, transition, result string) {
	if m == nil {
		return
	}
	m.wizardTransitionsTotal.WithLabelValues(wizard, transition, result).Inc()
}

// ObserveBatch records the size of one reconstructed batch.
func (m *Metrics) ObserveBatch(source string, size int) {
	if m == nil {
		return
	}
	m.batchSize.WithLabelValues(source).Observe(float64(size))
}

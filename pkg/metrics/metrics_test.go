package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("portal-test", reg)

	m.ObserveHTTP("GET", "/api/v1/portal/session", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/portal/session", 200, 20*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, total)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.ObserveUpstream("ListStations", "ok", time.Millisecond)
		m.IncWizardTransition("booking", "next", "ok")
		m.ObserveBatch("battery_requests", 3)
	})
}

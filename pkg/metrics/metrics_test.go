package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewWithRegistry_RegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "farrier-booking")

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/horses", "200").Inc()
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/horses", "200").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/horses", "200")))

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewWithRegistry_DuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegistry(reg, "farrier-booking")

	assert.Panics(t, func() {
		NewWithRegistry(reg, "farrier-booking")
	})
}

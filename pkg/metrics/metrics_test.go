package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("credkeeper_test").(*Metrics)
	m.RegisterCounter("login_requests_total", "Total number of login requests received")
	m.RegisterCounterVec("login_outcomes_total", "Login outcomes", []string{"outcome"})

	m.IncCounter("login_requests_total")
	m.AddCounter("login_requests_total", 2)
	m.IncCounter("not_registered")
	m.IncCounterVec("login_outcomes_total", "rejected")
	m.IncCounterVec("login_outcomes_total", "rejected")

	assert.Equal(t, float64(3), testutil.ToFloat64(m.counters["login_requests_total"]))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.counterVecs["login_outcomes_total"].WithLabelValues("rejected")))
}

func TestMetrics_HistogramAndGauge(t *testing.T) {
	m := NewMetrics("credkeeper_test").(*Metrics)
	m.RegisterHistogram("login_duration_seconds", "Duration of login requests in seconds", []float64{0.1, 1})
	m.RegisterGauge("hasher_iterations", "Iteration count for new credentials")

	m.ObserveHistogram("login_duration_seconds", 0.05)
	m.SetGauge("hasher_iterations", 120000)

	assert.Equal(t, float64(120000), testutil.ToFloat64(m.gauges["hasher_iterations"]))
	count, err := testutil.GatherAndCount(m.GetRegistry(), "credkeeper_test_login_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	m := NewMetrics("credkeeper_test")
	m.RegisterCounter("signup_requests_total", "help")
	assert.Panics(t, func() { m.RegisterCounter("signup_requests_total", "help") })
}

package testutil

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// CounterValue returns the current value for a CounterVec label set.
func CounterValue(tb testing.TB, vec *prometheus.CounterVec, labels ...string) float64 {
	tb.Helper()

	var m dto.Metric
	counter, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(tb, err)
	require.NoError(tb, counter.Write(&m))
	return m.GetCounter().GetValue()
}

// CounterDelta records the current value of a CounterVec label set and
// returns a function reporting how much it grew since. Counters are
// global, so tests compare deltas rather than absolute values.
func CounterDelta(tb testing.TB, vec *prometheus.CounterVec, labels ...string) func() float64 {
	tb.Helper()

	start := CounterValue(tb, vec, labels...)
	return func() float64 {
		tb.Helper()
		return CounterValue(tb, vec, labels...) - start
	}
}

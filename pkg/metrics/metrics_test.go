package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mongotypes/pkg/metrics"
)

func TestObserveCheck(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveCheck("objectid", true)
	m.ObserveCheck("objectid", true)
	m.ObserveCheck("objectid", false)
	m.ObserveCheck("document", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleChecks.WithLabelValues("objectid", metrics.OutcomePass)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleChecks.WithLabelValues("objectid", metrics.OutcomeFail)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleChecks.WithLabelValues("document", metrics.OutcomeFail)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.RuleChecks))
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.ObserveCheck("objectid", true) })
}

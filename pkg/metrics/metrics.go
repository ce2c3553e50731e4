package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Metrics counts validation checks by rule and outcome.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	RuleChecks *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg falls
// back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RuleChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mongotypes_rule_checks_total",
			Help: "Total identifier and document validation checks by rule and outcome",
		}, []string{"rule", "outcome"}), // outcome: "pass", "fail"
	}
}

// ObserveCheck records the outcome of a single rule evaluation.
func (m *Metrics) ObserveCheck(rule string, passed bool) {
	if m == nil {
		return
	}
	outcome := OutcomeFail
	if passed {
		outcome = OutcomePass
	}
	m.RuleChecks.WithLabelValues(rule, outcome).Inc()
}

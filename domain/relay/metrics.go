package relay

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const outcomeSuccess = "success"

type submissionMetrics struct {
	submissionsTotal *prometheus.CounterVec
}

// newSubmissionMetrics returns nil when metrics are disabled; observe is nil-safe.
func newSubmissionMetrics(reg prometheus.Registerer) *submissionMetrics {
	if reg == nil {
		return nil
	}

	m := &submissionMetrics{submissionsTotal: newSubmissionMetricsVec()}
	reg.MustRegister(m.submissionsTotal)
	return m
}

func newSubmissionMetricsVec() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_relay_submissions_total",
			Help: "Waitlist submissions relayed upstream, by outcome.",
		},
		[]string{"outcome"},
	)
}

func (m *submissionMetrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(strings.ToLower(outcome)).Inc()
}

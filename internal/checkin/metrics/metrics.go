// Package metrics holds the Prometheus instruments for the check-in domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for check-in operations.
type Metrics struct {
	CheckInsSubmitted  *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	SubmitDuration     prometheus.Histogram
}

// New creates and registers all check-in metrics with the given registerer.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate
// registration across suites.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CheckInsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "abgs_checkins_submitted_total",
			Help: "Total number of check-ins accepted, by status.",
		}, []string{"status"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "abgs_checkin_validation_failures_total",
			Help: "Total number of rejected check-in submissions, by validation kind.",
		}, []string{"kind"}),
		SubmitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "abgs_checkin_submit_duration_seconds",
			Help:    "Latency of check-in submissions, validation plus persistence.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveSubmitted records one accepted check-in.
func (m *Metrics) ObserveSubmitted(status string) {
	m.CheckInsSubmitted.WithLabelValues(status).Inc()
}

// ObserveValidationFailure records one rejected submission.
func (m *Metrics) ObserveValidationFailure(kind string) {
	m.ValidationFailures.WithLabelValues(kind).Inc()
}

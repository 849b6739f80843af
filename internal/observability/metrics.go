package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the prediction flow.
type Metrics struct {
	PredictionsTotal *prometheus.CounterVec // labels: strategy, tier
	AlertsTotal      *prometheus.CounterVec // labels: channel, outcome={success,failure}
}

func newMetrics() *Metrics {
	return &Metrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqimon",
			Name:      "predictions_total",
			Help:      "Completed index computations by strategy and resulting tier.",
		}, []string{"strategy", "tier"}),
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqimon",
			Name:      "alerts_total",
			Help:      "Threshold alert deliveries by channel and outcome.",
		}, []string{"channel", "outcome"}),
	}
}

// NewMetrics creates and registers all collectors with the default
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.PredictionsTotal, m.AlertsTotal)
	return m
}

// NewMetricsForTesting creates unregistered collectors to avoid
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

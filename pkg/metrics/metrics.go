// Package metrics wires the benchmark counters into luxfi/metric and keeps a
// Prometheus registry for optional scrape exposure.
package metrics

import (
	"net/http"
	"time"

	"github.com/luxfi/log"
	metric "github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters the benchmark suites increment while running.
type Metrics struct {
	// HFT suite
	EventsProcessed  metric.Counter
	TradesExecuted   metric.Counter
	ArbOpportunities metric.Counter

	// Risk suite
	VaRCalculations  metric.Counter
	MonteCarloTrials metric.Counter
	LossScenarios    metric.Counter

	registry *prometheus.Registry
	score    *prometheus.GaugeVec
	duration *prometheus.GaugeVec
	logger   log.Logger
}

// New creates the counter set under the given namespace.
func New(namespace string) *Metrics {
	logger := log.Root().New("module", "metrics")

	registry := prometheus.NewRegistry()

	score := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "benchmark_score",
		Help:      "Final combined score per benchmark suite",
	}, []string{"suite"})

	duration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "benchmark_duration_seconds",
		Help:      "Wall-clock duration per benchmark suite",
	}, []string{"suite"})

	registry.MustRegister(score, duration)

	return &Metrics{
		EventsProcessed:  metric.NewCounter(namespace + "_events_processed"),
		TradesExecuted:   metric.NewCounter(namespace + "_trades_executed"),
		ArbOpportunities: metric.NewCounter(namespace + "_arb_opportunities"),
		VaRCalculations:  metric.NewCounter(namespace + "_var_calculations"),
		MonteCarloTrials: metric.NewCounter(namespace + "_mc_trials"),
		LossScenarios:    metric.NewCounter(namespace + "_mc_loss_scenarios"),
		registry:         registry,
		score:            score,
		duration:         duration,
		logger:           logger,
	}
}

// RecordScore publishes a suite's final score to the Prometheus registry.
func (m *Metrics) RecordScore(suite string, score float64) {
	m.score.WithLabelValues(suite).Set(score)
}

// RecordDuration publishes a suite's wall-clock duration.
func (m *Metrics) RecordDuration(suite string, d time.Duration) {
	m.duration.WithLabelValues(suite).Set(d.Seconds())
}

// Serve exposes /metrics on addr and blocks until the listener fails.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.logger.Info("Serving Prometheus metrics", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

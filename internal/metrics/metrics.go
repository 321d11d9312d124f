// Package metrics exposes prometheus counters for the staker manager.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricName identifies a metric owned by Metrics.
type MetricName string

const (
	ApplyAttempts       MetricName = `apply_attempts`
	ApplyDismissed      MetricName = `apply_dismissed`
	ApplySucceeded      MetricName = `apply_succeeded`
	ApplyFailed         MetricName = `apply_failed`
	StakerConfigReads   MetricName = `staker_config_reads`
	StakerConfigWrites  MetricName = `staker_config_writes`
	StakerConfigRejects MetricName = `staker_config_rejects`
)

// Metrics owns a private prometheus registry so several instances can
// live in one process (tests, CLI and server side by side).
type Metrics struct {
	registry    *prometheus.Registry
	counterVecs map[MetricName]*prometheus.CounterVec
}

// NewMetrics creates and registers every staker counter.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		counterVecs: map[MetricName]*prometheus.CounterVec{
			ApplyAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "orchestrator",
				Name:      "apply_attempts",
				Help:      "number of staker configuration apply flows started",
			}, []string{"network"}),
			ApplyDismissed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "orchestrator",
				Name:      "apply_dismissed",
				Help:      "apply flows aborted at a confirmation prompt",
			}, []string{"network"}),
			ApplySucceeded: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "orchestrator",
				Name:      "apply_succeeded",
				Help:      "apply flows whose submission succeeded",
			}, []string{"network"}),
			ApplyFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "orchestrator",
				Name:      "apply_failed",
				Help:      "apply flows whose submission or refresh failed",
			}, []string{"network", "stage"}),
			StakerConfigReads: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "api",
				Name:      "config_reads",
				Help:      "staker configuration reads served",
			}, []string{"network"}),
			StakerConfigWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "api",
				Name:      "config_writes",
				Help:      "staker configurations persisted",
			}, []string{"network"}),
			StakerConfigRejects: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "staker",
				Subsystem: "api",
				Name:      "config_rejects",
				Help:      "staker configurations rejected by validation",
			}, []string{"network"}),
		},
	}
	for _, item := range m.counterVecs {
		m.registry.MustRegister(item)
	}
	return m
}

// GetCounterVec returns a counter vector by name, or nil if it doesn't exist.
func (m *Metrics) GetCounterVec(name MetricName) *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.counterVecs[name]
}

// Inc increments the counter name for the given label values.
// It is a no-op on a nil Metrics so components can run without metrics.
func (m *Metrics) Inc(name MetricName, labels ...string) {
	if vec := m.GetCounterVec(name); vec != nil {
		vec.WithLabelValues(labels...).Inc()
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

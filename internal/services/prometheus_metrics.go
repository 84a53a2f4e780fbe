package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reconciliationsTotal   *prometheus.CounterVec
	reconciliationDuration prometheus.Histogram
	demoWritesRejected     *prometheus.CounterVec
	modeTransitionsTotal   *prometheus.CounterVec
	progressUnavailable    *prometheus.CounterVec
	dashboardDuration      prometheus.Histogram
	activeSessions         prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger metrics with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		reconciliationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_total",
				Help: "Total number of account balance reconciliations",
			},
			[]string{"status"},
		),
		reconciliationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconciliation_duration_milliseconds",
				Help:    "Account reconciliation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		demoWritesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demo_write_rejected_total",
				Help: "Total number of writes rejected in demonstration mode",
			},
			[]string{"operation"},
		),
		modeTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mode_transitions_total",
				Help: "Total number of session mode transitions",
			},
			[]string{"to"},
		),
		progressUnavailable: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_unavailable_total",
				Help: "Total number of goal or budget progress computations with a zero target",
			},
			[]string{"entity_type"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_duration_seconds",
				Help:    "Dashboard assembly duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Current number of tracked sessions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "reconciliation":
		if status := tags["status"]; status != "" {
			m.reconciliationsTotal.WithLabelValues(status).Inc()
		}
	case "demo_write_rejected":
		m.demoWritesRejected.WithLabelValues(tags["operation"]).Inc()
	case "mode_transition":
		if to := tags["to"]; to != "" {
			m.modeTransitionsTotal.WithLabelValues(to).Inc()
		}
	case "progress_unavailable":
		m.progressUnavailable.WithLabelValues(tags["entity_type"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "reconciliation":
		m.reconciliationDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard":
		m.dashboardDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_sessions":
		m.activeSessions.Set(value)
	}
}

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricsManager struct {
	// counters
	CounterEvaluations        *prometheus.CounterVec
	CounterValidationFailures *prometheus.CounterVec
	CounterCalorieEntries     prometheus.Counter
	CounterViewFaults         prometheus.Counter
	CounterHandlerPanics      prometheus.Counter

	// gauges
	GaugeLogEntries prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func newTestMetricsManager() (*metricsManager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return newMetricsManager("health_tracker", "test_server", reg), reg
}

func newMetricsManager(namespace, subsystem string, reg prometheus.Registerer) *metricsManager {
	factory := promauto.With(reg)

	return &metricsManager{
		CounterEvaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Completed BMI and metabolic rate evaluations",
		}, []string{"kind"}),
		CounterValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validation_failures_total",
			Help:      "Inputs rejected with a user-facing message",
		}, []string{"kind"}),
		CounterCalorieEntries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "calorie_entries_total",
			Help:      "Calorie log entries added",
		}),
		CounterViewFaults: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "calorie_log_faults_total",
			Help:      "Unexpected failures while building calorie log entries or views",
		}),
		CounterHandlerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handler_panics_total",
			Help:      "Panics recovered while serving requests",
		}),
		GaugeLogEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "calorie_log_entries",
			Help:      "Entries currently held in the calorie log",
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Request latency by route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// observeEvaluation counts a finished evaluation, splitting out rejected input.
func (m *metricsManager) observeEvaluation(kind string, ok bool) {
	if ok {
		m.CounterEvaluations.WithLabelValues(kind).Inc()
		return
	}
	m.CounterValidationFailures.WithLabelValues(kind).Inc()
}

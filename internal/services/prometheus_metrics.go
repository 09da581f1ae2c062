package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	engineRuns        *prometheus.CounterVec
	engineDuration    prometheus.Histogram
	insightsGenerated *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		engineRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_engine_runs_total",
				Help: "Total number of insight engine cycles by outcome",
			},
			[]string{"outcome"},
		),
		engineDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_engine_duration_milliseconds",
				Help:    "Insight engine cycle duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		insightsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Total number of insights generated by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) RecordEngineRun(outcome string, duration time.Duration) {
	m.engineRuns.WithLabelValues(outcome).Inc()
	m.engineDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordInsightsGenerated(kind string, count int) {
	m.insightsGenerated.WithLabelValues(kind).Add(float64(count))
}

// NoopMetrics discards all recordings; used in tests
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) RecordEngineRun(outcome string, duration time.Duration) {}

func (m *NoopMetrics) RecordInsightsGenerated(kind string, count int) {}

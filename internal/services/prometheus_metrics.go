package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricDashboardLoad        = "dashboard_load"
	MetricDashboardMutation    = "dashboard_mutation"
	MetricModePromoted         = "dashboard_mode_promoted"
	MetricStaleLoadDiscarded   = "dashboard_stale_load_discarded"
	MetricAPIError             = "api_error"
	MetricDemoDataSeeded       = "demo_data_seeded"
	MetricActiveSessions       = "dashboard_active_sessions"
	MetricStoreBreakerState    = "store_breaker_state"
	MetricDashboardLoadLatency = "dashboard_load_duration"
)

type PrometheusMetrics struct {
	loadsTotal          *prometheus.CounterVec
	loadDuration        prometheus.Histogram
	mutationsTotal      *prometheus.CounterVec
	modePromotions      prometheus.Counter
	staleLoadsDiscarded prometheus.Counter
	apiErrorsTotal      *prometheus.CounterVec
	demoSeedsTotal      prometheus.Counter
	activeSessions      prometheus.Gauge
	storeBreakerState   prometheus.Gauge
}

// NewPrometheusMetrics registers the dashboard collectors on reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		loadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_loads_total",
				Help: "Total number of settled dashboard loads by mode and fallback reason",
			},
			[]string{"mode", "reason"},
		),
		loadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_load_duration_milliseconds",
				Help:    "Dashboard load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_mutations_total",
				Help: "Total number of dashboard mutations",
			},
			[]string{"collection", "operation", "status"},
		),
		modePromotions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_mode_promotions_total",
				Help: "Total number of sample to real mode promotions",
			},
		),
		staleLoadsDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_stale_loads_discarded_total",
				Help: "Total number of load results discarded because a newer load started",
			},
		),
		apiErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses",
			},
			[]string{"code", "status"},
		),
		demoSeedsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_data_seeded_total",
				Help: "Total number of owners seeded with demo data",
			},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_active_sessions",
				Help: "Current number of owner sessions held in memory",
			},
		),
		storeBreakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "store_breaker_state",
				Help: "Remote store breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricDashboardLoad:
		m.loadsTotal.WithLabelValues(tags["mode"], tags["reason"]).Inc()
	case MetricDashboardMutation:
		if status != "" {
			m.mutationsTotal.WithLabelValues(tags["collection"], tags["operation"], status).Inc()
		}
	case MetricModePromoted:
		m.modePromotions.Inc()
	case MetricStaleLoadDiscarded:
		m.staleLoadsDiscarded.Inc()
	case MetricAPIError:
		if code := tags["code"]; code != "" {
			m.apiErrorsTotal.WithLabelValues(code, status).Inc()
		}
	case MetricDemoDataSeeded:
		m.demoSeedsTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDashboardLoadLatency:
		m.loadDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricActiveSessions:
		m.activeSessions.Set(value)
	case MetricStoreBreakerState:
		m.storeBreakerState.Set(value)
	}
}

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	grievancesSubmitted       *prometheus.CounterVec
	grievanceStatusUpdates    *prometheus.CounterVec
	reportsGenerated          prometheus.Counter
	reportDuration            prometheus.Histogram
	csvExports                prometheus.Counter
	pendingGrievances         prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		grievancesSubmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grievances_submitted_total",
				Help: "Total number of grievances submitted",
			},
			[]string{"category"},
		),
		grievanceStatusUpdates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grievance_status_updates_total",
				Help: "Total number of grievance status transitions",
			},
			[]string{"status"},
		),
		reportsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_reports_generated_total",
				Help: "Total number of analytics reports generated",
			},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_report_duration_milliseconds",
				Help:    "Analytics report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		csvExports: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "grievance_csv_exports_total",
				Help: "Total number of grievance data exports",
			},
		),
		pendingGrievances: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pending_grievances",
				Help: "Current number of grievances awaiting action",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "grievance_submitted":
		if category := tags["category"]; category != "" {
			m.grievancesSubmitted.WithLabelValues(category).Inc()
		}
	case "grievance_status_updated":
		if status := tags["status"]; status != "" {
			m.grievanceStatusUpdates.WithLabelValues(status).Inc()
		}
	case "report_generated":
		m.reportsGenerated.Inc()
	case "csv_exported":
		m.csvExports.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "pending_grievances":
		m.pendingGrievances.Set(value)
	}
}

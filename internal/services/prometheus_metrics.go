package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	suggestionQueries         *prometheus.CounterVec
	suggestionDuration        prometheus.Histogram
	suggestionResults         prometheus.Histogram
	ingestFilesTotal          *prometheus.CounterVec
	ingestRecordsTotal        prometheus.Counter
	ingestDuration            prometheus.Histogram
	rankingRows               prometheus.Gauge
	userCreatedTotal          prometheus.Counter
	userUpdatedTotal          *prometheus.CounterVec
	userDeletedTotal          prometheus.Counter
	activeUsersTotal          prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		suggestionQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "suggestion_queries_total",
				Help: "Total number of college suggestion queries",
			},
			[]string{"operation", "status"},
		),
		suggestionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestion_query_duration_milliseconds",
				Help:    "Suggestion query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		suggestionResults: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestion_results_count",
				Help:    "Number of results returned per suggestion query",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		ingestFilesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingest_files_total",
				Help: "Total number of cutoff report files ingested",
			},
			[]string{"status"},
		),
		ingestRecordsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ingest_records_total",
				Help: "Total number of cutoff records loaded",
			},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingest_duration_seconds",
				Help:    "Report ingestion duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		rankingRows: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ranking_rows_total",
				Help: "Current number of rows in the ranking table",
			},
		),
		userCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "user_created_total",
				Help: "Total number of users created",
			},
		),
		userUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_updated_total",
				Help: "Total number of user updates by field",
			},
			[]string{"field"},
		),
		userDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "user_deleted_total",
				Help: "Total number of users deleted",
			},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of active users",
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
	case "suggestion_queries":
		m.suggestionQueries.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "ingest_file":
		if status := tags["status"]; status != "" {
			m.ingestFilesTotal.WithLabelValues(status).Inc()
		}
	case "user_created":
		m.userCreatedTotal.Inc()
	case "user_updated":
		if field := tags["field"]; field != "" {
			m.userUpdatedTotal.WithLabelValues(field).Inc()
		}
	case "user_deleted":
		m.userDeletedTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "suggestion_query":
		m.suggestionDuration.Observe(float64(duration.Milliseconds()))
	case "ingest":
		m.ingestDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "suggestion_results":
		m.suggestionResults.Observe(value)
	case "ranking_rows":
		m.rankingRows.Set(value)
	case "ingest_records":
		m.ingestRecordsTotal.Add(value)
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}

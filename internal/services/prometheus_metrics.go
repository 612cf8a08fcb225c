package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	importedRows  prometheus.Counter
	failedRows    prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		queriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_queries_total",
				Help: "Total number of sales queries by operation and status",
			},
			[]string{"operation", "status"},
		),
		queryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_query_duration_milliseconds",
				Help:    "Sales query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		importedRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sales_import_rows_inserted_total",
				Help: "Total number of CSV rows successfully inserted",
			},
		),
		failedRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sales_import_rows_failed_total",
				Help: "Total number of CSV rows that failed to import",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordQuery(operation, status string, duration time.Duration) {
	m.queriesTotal.WithLabelValues(operation, status).Inc()
	m.queryDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordImportBatch(inserted, failed int) {
	m.importedRows.Add(float64(inserted))
	m.failedRows.Add(float64(failed))
}

// NoopMetrics discards all recordings; used by the import CLI and tests
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) RecordQuery(operation, status string, duration time.Duration) {}

func (m *NoopMetrics) RecordImportBatch(inserted, failed int) {}

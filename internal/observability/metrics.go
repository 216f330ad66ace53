package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the report
// pipeline. The process is one-shot, so final values are logged at
// completion rather than scraped.
type Metrics struct {
	RowsRead prometheus.Counter

	// RowsDropped counts analysis-window exclusions. Labels: reason={bad_date,outside_window}.
	RowsDropped *prometheus.CounterVec

	// ExponentLookups counts damage-code normalizations.
	// Labels: field={property,crop}, result={scaled,passthrough}.
	ExponentLookups *prometheus.CounterVec

	// StageDuration observes wall time per pipeline stage.
	// Labels: stage={fetch,parse,filter,normalize,aggregate}.
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.RowsDropped,
		m.ExponentLookups,
		m.StageDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "rows_read_total",
			Help:      "Total rows parsed from the archive.",
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "rows_dropped_total",
			Help:      "Rows excluded by the analysis-window filter, by reason.",
		}, []string{"reason"}),
		ExponentLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "exponent_lookups_total",
			Help:      "Damage exponent-code lookups by field and result.",
		}, []string{"field", "result"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"stage"}),
	}
}

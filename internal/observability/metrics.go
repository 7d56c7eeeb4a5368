package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for one batch run.
// Each instance owns its registry, so a run can export exactly its own
// series to a node-exporter textfile.
type Metrics struct {
	Registry *prometheus.Registry

	FilesProcessed prometheus.Counter
	FilesSkipped   *prometheus.CounterVec // labels: reason={missing,error}
	RowsRead       prometheus.Counter
	RecordsKept    prometheus.Counter
	RowsDropped    *prometheus.CounterVec // labels: reason={coordinates,malformed}
	MapPoints      prometheus.Gauge
	RunDuration    *prometheus.GaugeVec // labels: job={aggregate,heatmap}
}

// NewMetrics creates all run metrics and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedestrian_accidents",
			Name:      "files_processed_total",
			Help:      "Yearly source files read and filtered successfully.",
		}),
		FilesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pedestrian_accidents",
			Name:      "files_skipped_total",
			Help:      "Target years or files excluded from the combined dataset.",
		}, []string{"reason"}),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedestrian_accidents",
			Name:      "rows_read_total",
			Help:      "Data rows read from yearly source files.",
		}),
		RecordsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedestrian_accidents",
			Name:      "records_kept_total",
			Help:      "Pedestrian accident records written to the combined dataset.",
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pedestrian_accidents",
			Name:      "rows_dropped_total",
			Help:      "Combined dataset rows dropped before rendering.",
		}, []string{"reason"}),
		MapPoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pedestrian_accidents",
			Name:      "map_points",
			Help:      "Points in the rendered heat layer.",
		}),
		RunDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pedestrian_accidents",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}, []string{"job"}),
	}

	m.Registry.MustRegister(
		m.FilesProcessed,
		m.FilesSkipped,
		m.RowsRead,
		m.RecordsKept,
		m.RowsDropped,
		m.MapPoints,
		m.RunDuration,
	)

	return m
}

// WriteTextfile writes the registry in the text exposition format for the
// node-exporter textfile collector. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}

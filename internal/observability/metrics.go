package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus counters and histograms for one chart
// run. The tools are one-shot processes, so metrics live on a private
// registry and are dumped to the debug log before exit instead of being
// scraped.
type Metrics struct {
	DatasetsFetched prometheus.Counter
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	DecodeErrors    prometheus.Counter
	PointsLoaded    prometheus.Counter

	FetchDuration  prometheus.Histogram
	RenderDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "datasets_fetched_total",
			Help:      "Total dataset files downloaded from the Met Office.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "cache_hits_total",
			Help:      "Total dataset loads served from the local file cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "cache_misses_total",
			Help:      "Total dataset loads that had to download.",
		}),
		DecodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "decode_errors_total",
			Help:      "Total NetCDF decode failures.",
		}),
		PointsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "points_loaded_total",
			Help:      "Total anomaly data points decoded across all series.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hadcrut5",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a single dataset download.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hadcrut5",
			Name:      "render_duration_seconds",
			Help:      "Duration of chart rendering and PNG export.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.DatasetsFetched,
		m.CacheHits,
		m.CacheMisses,
		m.DecodeErrors,
		m.PointsLoaded,
		m.FetchDuration,
		m.RenderDuration,
	)

	return m
}

// LogSummary gathers the registry and writes one debug line per metric.
func (m *Metrics) LogSummary(logger *slog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			logger.Debug("metric", "name", mf.GetName(), "value", metricValue(mf, metric))
		}
	}
}

func metricValue(mf *dto.MetricFamily, m *dto.Metric) float64 {
	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return m.GetHistogram().GetSampleSum()
	default:
		return 0
	}
}

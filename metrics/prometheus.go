package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusExporter mirrors a Collector's totals into Prometheus metrics
// registered on a caller-supplied registry, for scraping by an external monitoring stack during
// long training runs.
type PrometheusExporter struct {
	episodes  prometheus.Counter
	moves     prometheus.Counter
	bestScore prometheus.Gauge
	lastScore prometheus.Gauge
}

// NewPrometheusExporter registers its metrics against reg.
func NewPrometheusExporter(reg prometheus.Registerer) *PrometheusExporter {
	e := &PrometheusExporter{
		episodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fib2048_episodes_total",
			Help: "Total number of training episodes completed.",
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fib2048_moves_total",
			Help: "Total number of moves taken across all episodes.",
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fib2048_best_score",
			Help: "Highest episode score observed so far.",
		}),
		lastScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fib2048_last_score",
			Help: "Score of the most recently completed episode.",
		}),
	}
	reg.MustRegister(e.episodes, e.moves, e.bestScore, e.lastScore)
	return e
}

// Observe updates the exported gauges/counters from a freshly completed
// episode and the collector's running totals.
func (e *PrometheusExporter) Observe(m EpisodeMetric, totals Totals) {
	e.episodes.Inc()
	e.moves.Add(float64(m.Moves))
	e.bestScore.Set(float64(totals.BestScore))
	e.lastScore.Set(float64(totals.LastScore))
}

// exportingCollector wraps a Collector so every CompleteEpisode call also
// feeds a PrometheusExporter, letting arena and its callers stay unaware
// Prometheus exists.
type exportingCollector struct {
	Collector
	exporter *PrometheusExporter
}

// WithExporter wraps collector so that exporter observes every episode it
// completes.
func WithExporter(collector Collector, exporter *PrometheusExporter) Collector {
	return &exportingCollector{Collector: collector, exporter: exporter}
}

func (c *exportingCollector) CompleteEpisode(score, maxTile int) EpisodeMetric {
	m := c.Collector.CompleteEpisode(score, maxTile)
	c.exporter.Observe(m, c.Collector.Snapshot())
	return m
}

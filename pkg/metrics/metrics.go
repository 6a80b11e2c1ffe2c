package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the bot's Prometheus metrics behind a private registry.
type Collector struct {
	registry *prometheus.Registry

	TipsProcessed          prometheus.Counter
	TipsFailed             *prometheus.CounterVec
	ConsolidationTransfers prometheus.Counter
	ConsolidationFailures  prometheus.Counter
	SweepRuns              prometheus.Counter
	SweepDuration          prometheus.Histogram
	UnclaimedTipsRefunded  prometheus.Counter
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		TipsProcessed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "tipbot_tips_processed_total",
			Help: "Total number of successfully settled tip commands",
		}),
		TipsFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "tipbot_tips_failed_total",
			Help: "Total number of tip commands that short-circuited, by stage",
		}, []string{"stage"}),
		ConsolidationTransfers: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "tipbot_consolidation_transfers_total",
			Help: "Total number of secondary-to-primary balance transfers attempted",
		}),
		ConsolidationFailures: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "tipbot_consolidation_failures_total",
			Help: "Total number of consolidation transfers rejected by the ledger",
		}),
		SweepRuns: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "tipbot_sweep_runs_total",
			Help: "Total number of periodic consolidation sweeps",
		}),
		SweepDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "tipbot_sweep_duration_seconds",
			Help:    "Duration of a full consolidation sweep",
			Buckets: prometheus.DefBuckets,
		}),
		UnclaimedTipsRefunded: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "tipbot_unclaimed_tips_refunded_total",
			Help: "Total number of expired unclaimed tips refunded to their sender",
		}),
	}
}

// Handler returns an http.Handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

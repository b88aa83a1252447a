// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments a coloring run reports to.
// Callers that don't care about observability can pass NewMetrics() and
// never register it; the instruments are harmless unregistered counters.
type Metrics struct {
	Rounds          prometheus.Counter
	ConflictsTotal  prometheus.Counter
	ColoringSeconds prometheus.Histogram
	ColorsUsed      prometheus.Gauge
	RebalanceMoves  prometheus.Counter
}

// NewMetrics constructs a fresh, unregistered Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coloring_rounds_total",
			Help: "Number of speculate/detect/swap rounds run by the distance-one colorer.",
		}),
		ConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coloring_conflicts_total",
			Help: "Total number of vertices re-queued across all rounds.",
		}),
		ColoringSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coloring_duration_seconds",
			Help:    "Wall-clock time spent in the speculative coloring loop.",
			Buckets: prometheus.DefBuckets,
		}),
		ColorsUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coloring_colors_used",
			Help: "Number of distinct colors used by the most recent coloring run.",
		}),
		RebalanceMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coloring_rebalance_moves_total",
			Help: "Total number of vertices moved between color classes by the equitable rebalancer.",
		}),
	}
}

// Register registers every instrument with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.Rounds, m.ConflictsTotal, m.ColoringSeconds, m.ColorsUsed, m.RebalanceMoves,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

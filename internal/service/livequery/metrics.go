package livequery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSubscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "livequery_active_subscriptions",
			Help: "Number of standing order subscriptions",
		},
		[]string{"status"},
	)

	snapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livequery_snapshots_total",
			Help: "Total number of snapshots delivered to subscribers",
		},
		[]string{"status"},
	)

	snapshotErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livequery_snapshot_errors_total",
			Help: "Total number of failed snapshot queries",
		},
		[]string{"status"},
	)

	snapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "livequery_snapshot_query_duration_seconds",
			Help:    "Duration of snapshot queries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"status"},
	)
)

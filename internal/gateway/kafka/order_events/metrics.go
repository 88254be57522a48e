package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishAttempts = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_publish_attempts",
			Help:    "Producer attempts spent on one order event",
			Buckets: []float64{1, 2, 3, 4},
		},
		[]string{"topic", "result"},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_publish_duration_seconds",
			Help:    "Order event publish latency, retries included",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"topic", "result"},
	)
)

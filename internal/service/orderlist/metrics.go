package orderlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderlist_snapshots_rejected_total",
			Help: "Snapshots rejected because a document violated the store contract",
		},
	)

	staleCallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderlist_stale_callbacks_total",
			Help: "Callbacks dropped because they belonged to a replaced subscription",
		},
	)

	subscriptionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderlist_subscription_errors_total",
			Help: "Subscription failures surfaced to the list screen",
		},
	)
)

package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created via checkout",
		},
	)

	orderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Total number of applied order status transitions",
		},
		[]string{"from", "to", "trigger"},
	)

	orderTransitionsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_skipped_total",
			Help: "Scheduled transitions skipped because the status predicate no longer held",
		},
		[]string{"from", "to"},
	)
)

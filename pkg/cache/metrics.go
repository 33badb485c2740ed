package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hit_total",
			Help: "Total number of cache hits",
		},
		[]string{"keyspace"},
	)

	missTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_miss_total",
			Help: "Total number of cache misses (including backend errors)",
		},
		[]string{"keyspace"},
	)

	invalidateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_invalidated_keys_total",
			Help: "Total number of cache keys explicitly invalidated",
		},
	)
)

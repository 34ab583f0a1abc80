// Package metrics exposes Prometheus instrumentation for the query cache.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CacheMetrics counts query-cache activity
type CacheMetrics struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Invalidations prometheus.Counter
	SharedFlights prometheus.Counter
}

// NewCacheMetrics registers cache counters on the given registerer.
// Each session owns its own registry so repeated construction does not
// collide.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	factory := promauto.With(reg)
	return &CacheMetrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "console_query_cache_hits_total",
			Help: "Queries answered from a fresh cached result",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "console_query_cache_misses_total",
			Help: "Queries that had to fetch from the backend",
		}),
		Invalidations: factory.NewCounter(prometheus.CounterOpts{
			Name: "console_query_cache_invalidations_total",
			Help: "Cache entries marked stale by mutations or refetches",
		}),
		SharedFlights: factory.NewCounter(prometheus.CounterOpts{
			Name: "console_query_cache_shared_flights_total",
			Help: "Queries deduplicated into an already in-flight request",
		}),
	}
}

package configcache

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConfigCacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_cache_hits_total",
			Help: "Count of config lookups served from a cache tier.",
		},
		[]string{"tier"},
	)

	ConfigCacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "config_cache_misses_total",
			Help: "Count of config lookups that fell through to the origin.",
		},
	)

	ConfigOriginTimeoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "config_origin_timeouts_total",
			Help: "Count of origin fetches that exceeded the bounded timeout.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ConfigCacheHitsTotal,
		ConfigCacheMissesTotal,
		ConfigOriginTimeoutsTotal,
	)
}

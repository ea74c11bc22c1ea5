package chest

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OptimizationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chest_optimizations_total",
			Help: "Count of chest distribution optimizations performed.",
		},
	)
)

func init() {
	prometheus.MustRegister(OptimizationsTotal)
}

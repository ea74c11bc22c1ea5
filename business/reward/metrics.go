package reward

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChestsOpenedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chests_opened_total",
			Help: "Count of reward calculations by chest tier.",
		},
		[]string{"tier"},
	)
)

func init() {
	prometheus.MustRegister(ChestsOpenedTotal)
}

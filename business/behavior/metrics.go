package behavior

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behavior_analyses_total",
			Help: "Count of behavior analyses by resulting risk level.",
		},
		[]string{"risk_level"},
	)
)

func init() {
	prometheus.MustRegister(AnalysesTotal)
}

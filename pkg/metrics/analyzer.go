package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the behavior analysis HTTP handler
	AnalyzeLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chest_analyze_latency_seconds",
		Help:    "Latency of user potential analysis handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of analyses served
	AnalyzeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chest_analyze_requests_total",
		Help: "Total number of analyze requests",
	})

	// Total number of batch analyses served
	BatchAnalyzeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chest_analyze_batch_requests_total",
		Help: "Total number of batch analyze requests",
	})
)

func Init() {
	prometheus.MustRegister(
		AnalyzeLatency,
		AnalyzeRequests,
		BatchAnalyzeRequests,
	)
}

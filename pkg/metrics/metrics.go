// payfast-gateway/pkg/metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// "service" label so one query can compare the API and the worker
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payfast",
			Name:      "requests_total",
			Help:      "Total requests handled per service",
		},
		[]string{"service", "status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payfast",
			Name:      "request_duration_seconds",
			Help:      "Request duration per service",
			// signing is sub-millisecond; buckets stay tight at the low end
			Buckets: []float64{
				0.001, 0.002, 0.005, 0.01, 0.02, 0.03, 0.05, 0.08,
				0.12, 0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5,
			},
		},
		[]string{"service", "status"},
	)

	IPNValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payfast",
			Name:      "ipn_validations_total",
			Help:      "IPN signature checks by outcome (VALID / INVALID)",
		},
		[]string{"service", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, IPNValidationsTotal)
}

// Helpers so handlers stay tidy
func IncRequest(service, status, method string) {
	RequestsTotal.WithLabelValues(service, status, method).Inc()
}
func ObserveDuration(service, status string, seconds float64) {
	RequestDuration.WithLabelValues(service, status).Observe(seconds)
}
func IncIPNValidation(service, outcome string) {
	IPNValidationsTotal.WithLabelValues(service, outcome).Inc()
}

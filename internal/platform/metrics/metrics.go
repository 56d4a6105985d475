package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	Conversions  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conversion_http_requests_total",
			Help: "Total HTTP requests served, by method, path and status code",
		}, []string{"method", "path", "status"}),
		Conversions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conversion_operations_total",
			Help: "Total conversions performed, by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
}

// ObserveConversion counts one conversion attempt for an operation.
func (m *Metrics) ObserveConversion(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Conversions.WithLabelValues(operation, outcome).Inc()
}

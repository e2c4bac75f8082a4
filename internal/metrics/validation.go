package metrics

import "github.com/prometheus/client_golang/prometheus"

// Field validation Prometheus metrics.
var (
	ValidationChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldkit",
			Name:      "validation_checks_total",
			Help:      "Total number of field validations by field type and result",
		},
		[]string{"field_type", "result"}, // "valid" / "invalid"
	)

	DocumentWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldkit",
			Name:      "document_writes_total",
			Help:      "Total number of document mutations by operation",
		},
		[]string{"operation"},
	)
)

var validationMetricsRegistered bool

// RegisterValidationMetrics registers Prometheus validation metrics. Must be called once from main.
func RegisterValidationMetrics() {
	if validationMetricsRegistered {
		return
	}
	prometheus.MustRegister(ValidationChecksTotal)
	prometheus.MustRegister(DocumentWritesTotal)
	validationMetricsRegistered = true
}

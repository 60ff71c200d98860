package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Entity operation metrics
	CompanyOperationsCounter *prometheus.CounterVec
	ClientOperationsCounter  *prometheus.CounterVec
	JobOperationsCounter     *prometheus.CounterVec

	// Billing webhook metrics
	WebhookEventsCounter *prometheus.CounterVec
)

// InitMetrics registra las métricas Prometheus con el prefijo configurado.
func InitMetrics(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CompanyOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_company_operations_total",
			Help: "Total number of company operations",
		},
		[]string{"operation"},
	)

	ClientOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_client_operations_total",
			Help: "Total number of client operations",
		},
		[]string{"operation"},
	)

	JobOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_job_operations_total",
			Help: "Total number of job operations",
		},
		[]string{"operation"},
	)

	WebhookEventsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_webhook_events_total",
			Help: "Total number of billing webhook events processed",
		},
		[]string{"type", "result"},
	)
}

// RecordCompanyOperation incrementa el contador de operaciones de empresa.
func RecordCompanyOperation(operation string) {
	CompanyOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordClientOperation incrementa el contador de operaciones de cliente.
func RecordClientOperation(operation string) {
	ClientOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordJobOperation incrementa el contador de operaciones de trabajo.
func RecordJobOperation(operation string) {
	JobOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordWebhookEvent incrementa el contador de eventos del webhook.
func RecordWebhookEvent(eventType, result string) {
	WebhookEventsCounter.WithLabelValues(eventType, result).Inc()
}

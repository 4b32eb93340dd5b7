package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_requests_created_total",
			Help: "Total number of service requests submitted",
		},
		[]string{"service_type"},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_status_transitions_total",
			Help: "Total number of request status transitions",
		},
		[]string{"from", "to"},
	)

	PaymentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Total number of payments by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	AssignmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_pool_empty_total",
			Help: "Total number of submissions that found no eligible agent",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path", "status"},
	)
)

// Package observability exposes the Prometheus metrics of the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrderTransitionsTotal counts committed order lifecycle transitions.
	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusrun", Name: "order_transitions_total", Help: "Total committed order status transitions"},
		[]string{"from_status", "to_status"},
	)

	// OrdersCreatedTotal counts successfully created orders.
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "campusrun", Name: "orders_created_total", Help: "Total orders created"},
	)

	// ReviewsSubmittedTotal counts accepted order reviews by star rating.
	ReviewsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusrun", Name: "reviews_submitted_total", Help: "Total order reviews accepted"},
		[]string{"rating"},
	)

	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusrun", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "campusrun",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Package metrics exposes Prometheus instruments for the HTTP server and the
// lost-and-found workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login results.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lostfound_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lostfound_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lostfound_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)
)

// Business metrics.
var (
	ItemsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lostfound_items_published_total",
			Help: "Items published by the admin.",
		},
	)

	ReservationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lostfound_reservations_submitted_total",
			Help: "Reservation requests submitted by visitors.",
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lostfound_login_attempts_total",
			Help: "Admin login attempts by result.",
		},
		[]string{"result"},
	)
)

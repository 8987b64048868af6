package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "home_maintenance_bookings_created_total",
		Help: "Total service requests created by customers",
	})

	BookingTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "home_maintenance_booking_transitions_total",
		Help: "Service request status changes by target status and actor",
	}, []string{"status", "actor"})

	BookingsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "home_maintenance_bookings",
		Help: "Current number of service requests per status",
	}, []string{"status"})

	ReviewsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "home_maintenance_reviews_submitted_total",
		Help: "Total reviews accepted",
	})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "home_maintenance_notifications_total",
		Help: "Outbound WhatsApp notifications by result",
	}, []string{"result"})

	// Infrastructure metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "home_maintenance_http_requests_total",
		Help: "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "home_maintenance_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	AdminFeedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "home_maintenance_admin_feed_clients",
		Help: "Connected admin live feed clients",
	})
)

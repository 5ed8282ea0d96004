package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_bookings_created_total",
			Help: "Bookings accepted into the ledger",
		},
		[]string{"category"},
	)

	bookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_booking_transitions_total",
			Help: "Ledger transitions by name and result",
		},
		[]string{"transition", "result"},
	)

	bookingRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_booking_rejections_total",
			Help: "Reservation requests rejected by the conflict guard or validation",
		},
		[]string{"reason"},
	)

	gatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_gateway_requests_total",
			Help: "Payment gateway calls",
		},
		[]string{"mode", "operation", "status"},
	)

	gatewayLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parking_gateway_request_duration_seconds",
			Help:    "Latency of payment gateway calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"mode", "operation"},
	)

	callbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_payment_callbacks_total",
			Help: "Payment outcomes applied by reconciliation",
		},
		[]string{"source", "outcome", "result"},
	)
)

func TrackBookingCreated(category string) {
	bookingsCreated.WithLabelValues(category).Inc()
}

func TrackTransition(transition string, err error) {
	bookingTransitions.WithLabelValues(transition, result(err)).Inc()
}

func TrackRejection(reason string) {
	bookingRejections.WithLabelValues(reason).Inc()
}

func TrackGatewayCall(mode, operation string, started time.Time, err error) {
	gatewayRequests.WithLabelValues(mode, operation, result(err)).Inc()
	gatewayLatency.WithLabelValues(mode, operation).Observe(time.Since(started).Seconds())
}

func TrackCallback(source, outcome string, err error) {
	callbacks.WithLabelValues(source, outcome, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

package handler

import (
	"errors"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	gatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Payment gateway operations by outcome",
		},
		[]string{"gateway", "operation", "result"},
	)

	verifyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "gateway",
			Name:      "verify_duration_seconds",
			Help:      "Histogram of payment verification durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders created from verified payments",
		},
		[]string{"gateway"},
	)

	redirectOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "gateway_returns_total",
			Help:      "Customers returning from the regional gateway by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		gatewayCalls,
		verifyDuration,
		ordersCreated,
		redirectOutcomes,
	)
}

func observeGateway(gateway, operation string, err error) {
	gatewayCalls.WithLabelValues(gateway, operation, gatewayResult(err)).Inc()
}

func gatewayResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrGatewayUnavailable):
		return "unavailable"
	case errors.Is(err, entities.ErrGatewayRejected), errors.Is(err, entities.ErrPaymentNotVerified):
		return "rejected"
	}
	return "error"
}

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StatusTransitions   *prometheus.CounterVec
	ProductionOrders    prometheus.Counter
	ReconcileRuns       *prometheus.CounterVec
	ReconciledOrders    prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "procman",
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "procman",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		StatusTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "procman",
				Name:      "order_status_transitions_total",
				Help:      "Order status changes requested through the API, by target status.",
			},
			[]string{"to"},
		),
		ProductionOrders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "procman",
				Name:      "production_orders_created_total",
				Help:      "Production orders created.",
			},
		),
		ReconcileRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "procman",
				Name:      "reconcile_runs_total",
				Help:      "Totals reconciliation runs by result.",
			},
			[]string{"result"},
		),
		ReconciledOrders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "procman",
				Name:      "reconciled_orders_total",
				Help:      "Orders whose stored total was corrected by reconciliation.",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.StatusTransitions,
		m.ProductionOrders,
		m.ReconcileRuns,
		m.ReconciledOrders,
	)
	return m
}

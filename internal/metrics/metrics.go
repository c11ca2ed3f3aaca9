package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPDurationSeconds *prometheus.HistogramVec
	HTTPErrorsTotal     *prometheus.CounterVec

	// Matcher metrics
	MatchesTotal *prometheus.CounterVec

	// Persistence metrics
	SnapshotOpsTotal *prometheus.CounterVec

	// Export metrics
	ExportsTotal *prometheus.CounterVec

	// Payment metrics
	OrdersTotal       *prometheus.CounterVec
	EntitlementGrants *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),

		HTTPDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kcet_http_duration_seconds",
				Help:    "HTTP request duration in seconds by route",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"route"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: validation, not_found, entitlement, provider
		),

		MatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_cutoff_matches_total",
				Help: "Total cutoff matches by tier label",
			},
			[]string{"tier"}, // tier label or no_match
		),

		SnapshotOpsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_snapshot_ops_total",
				Help: "Total snapshot operations by kind and status",
			},
			[]string{"op", "status"}, // op: save, load, delete; status: success, error, malformed
		),

		ExportsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_exports_total",
				Help: "Total exports and imports by format and status",
			},
			[]string{"format", "status"}, // format: pdf, xlsx, xlsx_import
		),

		OrdersTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_orders_total",
				Help: "Total payment orders by status",
			},
			[]string{"status"}, // status: created, invalid, provider_error
		),

		EntitlementGrants: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcet_entitlement_grants_total",
				Help: "Total entitlement grants by feature and status",
			},
			[]string{"feature", "status"}, // status: granted, rejected
		),
	}
}

// RecordMatch increments the match counter for a tier label.
func (m *Metrics) RecordMatch(tierLabel string) {
	m.MatchesTotal.WithLabelValues(tierLabel).Inc()
}

// RecordSnapshotOp increments the snapshot counter.
func (m *Metrics) RecordSnapshotOp(op, status string) {
	m.SnapshotOpsTotal.WithLabelValues(op, status).Inc()
}

// RecordExport increments the export counter.
func (m *Metrics) RecordExport(format, status string) {
	m.ExportsTotal.WithLabelValues(format, status).Inc()
}

// RecordOrder increments the order counter.
func (m *Metrics) RecordOrder(status string) {
	m.OrdersTotal.WithLabelValues(status).Inc()
}

// RecordHTTPError increments the HTTP error counter.
func (m *Metrics) RecordHTTPError(errorType, module string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

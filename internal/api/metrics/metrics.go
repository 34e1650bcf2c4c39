// Package metrics defines and registers all custom Prometheus metrics for the
// workshop service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "oficina"

// ── Lifecycle metrics ─────────────────────────────────────────────────────────

// ServicesCreatedTotal counts newly opened service requests.
// Label:
//   - status: the initial status (e.g. "aguardando_orcamento")
var ServicesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "services_created_total",
		Help:      "Total number of service requests created, by initial status.",
	},
	[]string{"status"},
)

// StatusTransitionsTotal counts status changes.
// Labels:
//   - from: previous status
//   - to:   new status
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of service status transitions.",
	},
	[]string{"from", "to"},
)

// MechanicAssignmentsTotal counts mechanic assignments, including quote auto-claims.
var MechanicAssignmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mechanic_assignments_total",
		Help:      "Total number of mechanic assignments.",
	},
)

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesCreatedTotal counts quotes, by the role of the author.
var QuotesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_created_total",
		Help:      "Total number of quotes created, by author role.",
	},
	[]string{"role"},
)

// QuotesApprovedTotal counts approvals, re-approvals included.
var QuotesApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_approved_total",
		Help:      "Total number of quote approvals.",
	},
)

// QuoteAmount observes approved amounts.
var QuoteAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_approved_amount",
		Help:      "Distribution of approved quote amounts.",
		Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Labels:
//   - surface: "api" or "web"
//   - result:  "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by surface and result.",
	},
	[]string{"surface", "result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of events waiting in the dispatcher.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in the dispatcher.",
	},
)

// AuditWriteFailuresTotal counts audit events that were dropped or could not be persisted.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit events lost.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// payroll API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payroll"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts self-service registration attempts.
// Label:
//   - result: "success", "invalid" (validation failure) or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts tokens revoked via logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked before expiry.",
	},
)

// ── Access decision metrics ───────────────────────────────────────────────────

// AccessDeniedTotal counts requests rejected by the access decision logic.
// Labels:
//   - method: HTTP method of the denied request
//   - path: route pattern of the denied request (e.g. "/employees/:id")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by access control.",
	},
	[]string{"method", "path"},
)

// ── Employee record metrics ───────────────────────────────────────────────────

// EmployeeWritesTotal counts mutations of employee records.
// Label:
//   - operation: "created", "replaced" or "deleted"
var EmployeeWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_writes_total",
		Help:      "Total number of employee record mutations, by operation.",
	},
	[]string{"operation"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the farm management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farm"

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

// SignupsTotal counts successful self-registrations. All self-registered
// accounts carry the client role.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful account registrations.",
	},
)

// TokenRejectionsTotal counts bearer tokens rejected by the session guard.
// Label:
//   - reason: "missing", "malformed", "invalid", or "revoked"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected, labelled by reason.",
	},
	[]string{"reason"},
)

// RoleRedirectsTotal counts dashboard-area redirects issued when a session
// visits the other role's area.
var RoleRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_redirects_total",
		Help:      "Total number of dashboard redirects issued on role mismatch.",
	},
)

// NotificationsTotal counts calendar-event notification deliveries.
// Label:
//   - result: "sent" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of calendar event notifications, labelled by result.",
	},
	[]string{"result"},
)

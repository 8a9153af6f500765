// Package metrics defines all custom Prometheus metrics for the healthcare
// portal. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "invalid", "in_flight" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// GuardDecisionsTotal counts route guard evaluations.
// Labels:
//   - outcome: "render", "login_redirect", "role_redirect" or "unavailable"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ActiveSessions tracks sessions opened minus sessions closed by this
// process. Expired slots are reaped by Redis, so this over-counts across
// restarts; treat it as a trend, not a census.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Sessions opened minus sessions closed.",
	},
)

// BackendRequestDuration measures upstream REST call latency.
// Labels:
//   - method: HTTP method of the upstream call
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the upstream healthcare API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// Package metrics defines the custom Prometheus metrics for the auth API.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created", "duplicate_email" or "invalid_payload"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure is uniform on purpose; the
//     metric does not distinguish unknown email from wrong password either)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenResolutionsTotal counts authentication gate outcomes on protected
// routes.
// Label:
//   - result: "resolved", "missing_credentials", "invalid_token" or
//     "user_not_found"
var TokenResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_resolutions_total",
		Help:      "Total number of bearer token resolutions, by outcome.",
	},
	[]string{"result"},
)

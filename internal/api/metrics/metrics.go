// Package metrics defines the custom Prometheus metrics of the HTTP layer.
//
// Metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from echoprometheus in the router and
// outbound backend metrics live with the backend client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Access control ────────────────────────────────────────────────────────────

// AccessDecisionsTotal counts dashboard gate decisions.
// Label:
//   - result: "granted", "denied" or "unauthenticated"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of dashboard access gate decisions, by result.",
	},
	[]string{"result"},
)

// VisibleItemsTotal counts items returned after visibility filtering.
// Label:
//   - resource: "events" or "archivos"
var VisibleItemsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visible_items_total",
		Help:      "Total number of resources returned after visibility filtering.",
	},
	[]string{"resource"},
)

// ── Site mode ─────────────────────────────────────────────────────────────────

// ConstructionRedirectsTotal counts requests redirected to the placeholder page.
var ConstructionRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "construction_redirects_total",
		Help:      "Total number of requests redirected while the site is under construction.",
	},
)

package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestsTotal counts outbound calls to the hosted backend.
// Labels:
//   - operation: logical call name (e.g. "get_user", "user_roles", "list_events")
//   - outcome: "ok", "unauthorized", "error"
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the hosted backend.",
	},
	[]string{"operation", "outcome"},
)

// requestDuration measures round-trip latency to the hosted backend.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "portal",
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the hosted backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

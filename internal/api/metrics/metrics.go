// Package metrics defines the custom Prometheus metrics for the ordering
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering"

// AuthRequestsTotal counts authentication decisions at the gate.
// Labels:
//   - scheme: "hosted" (identity-service session), "local" (self-issued
//     token), or "none" (no credential presented)
//   - outcome: "ok" or "rejected"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of authentication attempts, by credential scheme and outcome.",
	},
	[]string{"scheme", "outcome"},
)

// RateLimitedTotal counts requests rejected by the IP rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	decisionAllowed  = "allowed"
	decisionRejected = "rejected"
)

// RateLimiterDecisionsTotal считает решения лимитера по роутам; rejected - ответы 429.
var RateLimiterDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limiter_decisions_total",
		Help: "Per-client rate limiter decisions by route",
	},
	[]string{"decision", "method", "route"},
)

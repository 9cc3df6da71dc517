package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

var RankingCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ranking_cache_requests_total",
		Help: "Total number of ranking cache lookups by result",
	},
	[]string{"result"},
)

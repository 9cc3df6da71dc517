package parcel_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultApplied   = "applied"
	resultRejected  = "rejected"
	resultMalformed = "malformed"
	resultRetry     = "retry"
)

var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "parcel_status_events_processed_total",
		Help: "Parcel status change events grouped by processing result",
	},
	[]string{"result"},
)

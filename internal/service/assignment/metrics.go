package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAssigned = "assigned"
	resultRejected = "rejected"
	resultConflict = "conflict"
)

var ParcelAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "parcel_assignments_total",
		Help: "Total number of parcel assignment attempts by result",
	},
	[]string{"result"},
)

package parcel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParcelsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parcels_booked_total",
			Help: "Total number of booked parcels",
		},
	)

	ParcelStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_status_transitions_total",
			Help: "Total number of applied parcel status transitions",
		},
		[]string{"from", "to"},
	)
)

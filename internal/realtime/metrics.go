package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectedParties = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "realtime_connected_parties",
			Help: "Authenticated realtime connections by role",
		},
		[]string{"role"},
	)

	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_emitted_total",
			Help: "Realtime events emitted to connected parties",
		},
		[]string{"event"},
	)
)

package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_sent_total",
			Help: "Push notifications delivered to FCM",
		},
	)

	PushSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "push_notifications_skipped_total",
			Help: "Push notifications skipped because no device token is stored",
		},
	)

	PushFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_notifications_failed_total",
			Help: "Push notifications that could not be delivered",
		},
		[]string{"reason"},
	)
)

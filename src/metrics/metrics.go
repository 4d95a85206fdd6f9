// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedbackTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zab_portal",
		Subsystem: "feedback",
		Name:      "transitions_total",
		Help:      "Feedback records entering each state.",
	}, []string{"state"})

	DeliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zab_portal",
		Subsystem: "notify",
		Name:      "delivery_failures_total",
		Help:      "Failed notification deliveries per sink.",
	}, []string{"sink"})

	RejectedPurged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zab_portal",
		Subsystem: "feedback",
		Name:      "rejected_purged_total",
		Help:      "Rejected feedback records hard-deleted by the retention job.",
	})
)

package txkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txkit",
			Subsystem: "status",
			Name:      "transitions_total",
			Help:      "Applied lifecycle status transitions by target status",
		},
		[]string{"status"},
	)

	transitionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txkit",
			Subsystem: "status",
			Name:      "transitions_rejected_total",
			Help:      "Lifecycle status transitions rejected as invalid",
		},
		[]string{"from", "to"},
	)

	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txkit",
			Subsystem: "submitter",
			Name:      "submissions_total",
			Help:      "Call submissions by execution mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	confirmationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "txkit",
			Subsystem: "reconciler",
			Name:      "confirmation_seconds",
			Help:      "Time from reconciliation start to the winning terminal signal",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"path"},
	)
)

const (
	modeBatch      = "batch"
	modeSequential = "sequential"

	outcomeSubmitted = "submitted"
	outcomeFailed    = "failed"
)

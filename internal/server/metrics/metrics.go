// Package metrics declares the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Redemption outcomes.
const (
	OutcomeAccepted        = "accepted"
	OutcomeAlreadyPresent  = "already_present"
	OutcomeSessionInvalid  = "session_invalid"
	OutcomeTokenExpired    = "token_expired"
	OutcomeStudentNotFound = "student_not_found"
	OutcomeError           = "error"
)

var (
	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrattend_redemptions_total",
			Help: "Total number of redemption attempts by outcome",
		},
		[]string{"outcome"},
	)

	RotationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qrattend_token_rotations_total",
			Help: "Total number of sub-token rotations persisted",
		},
	)

	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qrattend_sessions_started_total",
			Help: "Total number of sessions started",
		},
	)

	SessionsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrattend_sessions_ended_total",
			Help: "Total number of sessions ended, by reason",
		},
		[]string{"reason"},
	)

	Subscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "qrattend_realtime_subscribers",
			Help: "Number of realtime subscribers per channel kind",
		},
		[]string{"kind"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrattend_events_published_total",
			Help: "Total number of realtime events delivered to subscriber buffers",
		},
		[]string{"type"},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrattend_events_dropped_total",
			Help: "Total number of realtime events dropped on full subscriber buffers",
		},
		[]string{"type"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionsTotal counts finished panel actions by outcome kind ("ok" on success)
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vesting_panel_actions_total",
			Help: "Total number of panel actions by outcome",
		},
		[]string{"action", "kind"},
	)

	// ActionDuration tracks wall time of each action including confirmation waits
	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vesting_panel_action_duration_seconds",
			Help:    "Panel action duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15, 30, 60, 120, 300},
		},
		[]string{"action"},
	)

	// ActionsInFlight tracks actions currently running
	ActionsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vesting_panel_actions_in_flight",
			Help: "Panel actions currently running",
		},
		[]string{"action"},
	)
)

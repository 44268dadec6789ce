// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_planner_submissions_total",
			Help: "Total number of goal planning submissions by outcome",
		},
		[]string{"outcome"},
	)

	SubmissionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_planner_submissions_failed_total",
			Help: "Total number of failed goal planning submissions",
		},
		[]string{"error_code"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "goal_planner_submission_duration_seconds",
			Help:    "Duration of goal planning submissions in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 180},
		},
		[]string{"outcome"},
	)

	SubmissionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "goal_planner_submissions_active",
			Help: "Number of submissions currently in flight",
		},
	)

	WizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_planner_wizard_transitions_total",
			Help: "Wizard navigation events by action and resulting step",
		},
		[]string{"action", "step"},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_planner_profile_validation_failures_total",
			Help: "Number of forward transitions blocked by profile validation",
		},
	)
)

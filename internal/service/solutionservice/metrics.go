package solutionservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// transitionsTotal counts lifecycle moves by the status they reached.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zasker",
		Subsystem: "solutions",
		Name:      "transitions_total",
		Help:      "Solution lifecycle transitions by target status",
	}, []string{"status"})

	// rejectedTransitionsTotal counts operations refused because of the solution's state.
	rejectedTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zasker",
		Subsystem: "solutions",
		Name:      "rejected_transitions_total",
		Help:      "Lifecycle operations refused by the state machine",
	}, []string{"operation"})

	rewardsPaidTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zasker",
		Subsystem: "solutions",
		Name:      "rewards_paid_total",
		Help:      "Sum of rewards credited to solvers",
	})
)

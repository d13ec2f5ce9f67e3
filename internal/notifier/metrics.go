package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// eventsTotal counts webhook events by type and outcome (queued, dropped, delivered, failed).
var eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "zasker",
	Subsystem: "notifier",
	Name:      "events_total",
	Help:      "Solution events handled by the webhook notifier",
}, []string{"type", "result"})

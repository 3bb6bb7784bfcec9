package slidenav

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	events      *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// newMetrics returns nil when reg is nil; a nil *metrics records nothing.
func newMetrics(reg prometheus.Registerer, logger *slog.Logger) *metrics {
	if reg == nil {
		return nil
	}

	m := &metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slidenav",
			Name:      "navigation_events_total",
			Help:      "Navigator events handled by the coordinator.",
		}, []string{"event"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slidenav",
			Name:      "transitions_total",
			Help:      "View transitions started by the coordinator.",
		}, []string{"mode"}),
	}
	m.events = register(reg, m.events, logger)
	m.transitions = register(reg, m.transitions, logger)
	return m
}

// register reuses an already registered collector so several navigators can
// share one registry. Any other failure leaves c counting but unexported.
func register(reg prometheus.Registerer, c *prometheus.CounterVec, logger *slog.Logger) *prometheus.CounterVec {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing
		}
	}
	logger.Error("Failed to register metrics", "error", err)
	return c
}

func (m *metrics) event(name string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(name).Inc()
}

func (m *metrics) transition(mode string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(mode).Inc()
}

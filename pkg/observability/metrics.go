package observability

import (
	"github.com/aretw0/parley/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the lifecycle hooks.
type Metrics struct {
	SessionsStarted   *prometheus.CounterVec
	SessionsCompleted *prometheus.CounterVec
	SessionsDiscarded *prometheus.CounterVec
	NodeVisits        *prometheus.CounterVec
	OptionsSelected   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SessionsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_sessions_started_total",
			Help: "Total number of conversations started",
		}, []string{"tree"}),
		SessionsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_sessions_completed_total",
			Help: "Total number of conversations that reached a terminal node",
		}, []string{"tree"}),
		SessionsDiscarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_sessions_discarded_total",
			Help: "Total number of conversations replaced by a new start",
		}, []string{"tree"}),
		NodeVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_node_visits_total",
			Help: "Total number of node visits",
		}, []string{"tree", "kind"}),
		OptionsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_options_selected_total",
			Help: "Total number of choice options selected",
		}, []string{"tree"}),
	}

	if reg != nil {
		reg.MustRegister(m.SessionsStarted, m.SessionsCompleted, m.SessionsDiscarded, m.NodeVisits, m.OptionsSelected)
	}
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(e *domain.SessionEvent) {
			m.SessionsStarted.WithLabelValues(e.TreeID).Inc()
		},
		OnSessionEnd: func(e *domain.SessionEvent) {
			m.SessionsCompleted.WithLabelValues(e.TreeID).Inc()
		},
		OnSessionDiscard: func(e *domain.SessionEvent) {
			m.SessionsDiscarded.WithLabelValues(e.TreeID).Inc()
		},
		OnNodeEnter: func(e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(e.TreeID, string(e.NodeKind)).Inc()
		},
		OnOptionSelected: func(e *domain.OptionEvent) {
			m.OptionsSelected.WithLabelValues(e.TreeID).Inc()
		},
	}
}

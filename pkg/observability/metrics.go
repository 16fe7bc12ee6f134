package observability

import (
	"context"

	"github.com/aretw0/winnow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	NodeVisits        *prometheus.CounterVec
	InvalidInputs     *prometheus.CounterVec
	VariablesCaptured *prometheus.CounterVec
	SessionsCompleted prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winnow_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"node_id", "kind"},
		),
		InvalidInputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winnow_invalid_inputs_total",
				Help: "Total number of rejected choices",
			},
			[]string{"node_id", "reason"},
		),
		VariablesCaptured: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winnow_variables_captured_total",
				Help: "Total number of answers bound to a variable",
			},
			[]string{"variable"},
		),
		SessionsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "winnow_sessions_completed_total",
				Help: "Total number of sessions that reached the halt sentinel",
			},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.NodeVisits, m.InvalidInputs, m.VariablesCaptured, m.SessionsCompleted} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(e.NodeID.String(), string(e.NodeKind)).Inc()
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			if e.To == domain.TerminalNodeID {
				m.SessionsCompleted.Inc()
			}
		},
		OnInvalidInput: func(ctx context.Context, e *domain.InputEvent) {
			m.InvalidInputs.WithLabelValues(e.NodeID.String(), e.Reason).Inc()
		},
		OnVariableSet: func(ctx context.Context, e *domain.InputEvent) {
			m.VariablesCaptured.WithLabelValues(e.Variable).Inc()
		},
	}
}

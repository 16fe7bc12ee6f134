package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/pkg/domain"
)

// Engine is the core state machine runner.
// It holds the immutable node list; every session-specific value lives in
// the domain.State passed to its methods.
type Engine struct {
	nodes  *domain.NodeList
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine over a parsed script.
func NewEngine(nodes *domain.NodeList, opts ...EngineOption) *Engine {
	e := &Engine{
		nodes:  nodes,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial state of a session, positioned on node 0.
// A script without nodes starts already terminated.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.State {
	state := domain.NewState(sessionID)
	if e.nodes.Len() == 0 {
		e.logger.Warn("script has no nodes, session ends immediately", "session_id", sessionID)
		state.TransitionTo(domain.TerminalNodeID)
		return state
	}

	e.logger.Debug("session started", "session_id", sessionID)
	e.emitNodeEnter(ctx, state)
	return state
}

// Inspect returns the parsed nodes for visualization or introspection tools.
func (e *Engine) Inspect() []domain.Node {
	return e.nodes.All()
}

// Nodes returns the underlying node list.
func (e *Engine) Nodes() *domain.NodeList {
	return e.nodes
}

// currentNode loads the node the state points at.
func (e *Engine) currentNode(state *domain.State) (domain.Node, error) {
	if state.Terminated() {
		return nil, domain.ErrSessionTerminated
	}
	return e.nodes.Get(state.CurrentNodeID)
}

// transition moves next to id and fires the leave/enter hooks.
func (e *Engine) transition(ctx context.Context, next *domain.State, from domain.Node, id domain.NodeID) {
	e.emitNodeLeave(ctx, next, from, id)

	e.logger.Debug("transition",
		"session_id", next.SessionID,
		"from", next.CurrentNodeID,
		"to", id,
	)
	next.TransitionTo(id)

	if !next.Terminated() {
		e.emitNodeEnter(ctx, next)
	}
}

func (e *Engine) emitNodeEnter(ctx context.Context, state *domain.State) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	node, err := e.nodes.Get(state.CurrentNodeID)
	if err != nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventNodeEnter,
			SessionID: state.SessionID,
		},
		NodeID:   state.CurrentNodeID,
		NodeKind: node.Kind(),
	})
}

func (e *Engine) emitNodeLeave(ctx context.Context, state *domain.State, node domain.Node, to domain.NodeID) {
	if e.hooks.OnNodeLeave == nil {
		return
	}
	e.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventNodeLeave,
			SessionID: state.SessionID,
		},
		NodeID:   state.CurrentNodeID,
		NodeKind: node.Kind(),
		Attempt:  state.Attempt,
		To:       to,
	})
}

func (e *Engine) emitInput(ctx context.Context, kind domain.EventType, state *domain.State, input, variable, reason string) {
	hook := e.hooks.OnVariableSet
	if kind == domain.EventInvalidInput {
		hook = e.hooks.OnInvalidInput
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.InputEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      kind,
			SessionID: state.SessionID,
		},
		NodeID:   state.CurrentNodeID,
		Input:    input,
		Variable: variable,
		Reason:   reason,
	})
}

package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter    EventType = "node_enter"
	EventNodeLeave    EventType = "node_leave"
	EventInvalidInput EventType = "invalid_input"
	EventVariableSet  EventType = "variable_set"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// NodeEvent represents entry or exit from a node.
// To is set on node_leave and may be TerminalNodeID.
type NodeEvent struct {
	EventBase
	NodeID   NodeID   `json:"node_id"`
	NodeKind NodeKind `json:"node_kind"`
	Attempt  int      `json:"attempt,omitempty"`
	To       NodeID   `json:"to,omitempty"`
}

// InputEvent represents an answer the engine rejected or stored.
type InputEvent struct {
	EventBase
	NodeID   NodeID `json:"node_id"`
	Input    string `json:"input"`
	Variable string `json:"variable,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnNodeEnter    func(context.Context, *NodeEvent)
	OnNodeLeave    func(context.Context, *NodeEvent)
	OnInvalidInput func(context.Context, *InputEvent)
	OnVariableSet  func(context.Context, *InputEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter:    chain(h.OnNodeEnter, other.OnNodeEnter),
		OnNodeLeave:    chain(h.OnNodeLeave, other.OnNodeLeave),
		OnInvalidInput: chain(h.OnInvalidInput, other.OnInvalidInput),
		OnVariableSet:  chain(h.OnVariableSet, other.OnVariableSet),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}

package domain

import (
	"slices"

	"github.com/aretw0/winnow/pkg/env"
)

// ExecutionStatus defines the current mode of the engine mechanics.
type ExecutionStatus string

const (
	StatusActive     ExecutionStatus = "active"     // Normal operation
	StatusTerminated ExecutionStatus = "terminated" // Sentinel reached
)

// State represents the current snapshot of a session.
type State struct {
	// SessionID correlates logs and events of a single run.
	SessionID string

	// CurrentNodeID is the active node, or TerminalNodeID once halted.
	CurrentNodeID NodeID

	// Attempt is the index of the prompt shown by the current Question node.
	// Every transition resets it to 0.
	Attempt int

	// Status indicates if the session is running or done.
	Status ExecutionStatus

	// Env holds the answers captured so far.
	Env *env.Environment

	// History lists the visited nodes in order, starting with the entry node.
	History []NodeID
}

// NewState creates a clean state starting at node 0.
func NewState(sessionID string) *State {
	return &State{
		SessionID:     sessionID,
		CurrentNodeID: 0,
		Status:        StatusActive,
		Env:           env.New(),
		History:       []NodeID{0},
	}
}

// Terminated reports whether the session reached the sentinel.
func (s *State) Terminated() bool {
	return s.Status == StatusTerminated || s.CurrentNodeID.IsTerminal()
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	if s.Env != nil {
		c.Env = s.Env.Clone()
	} else {
		c.Env = env.New()
	}
	c.History = slices.Clone(s.History)
	return &c
}

// TransitionTo moves the state to id, resetting the attempt counter.
func (s *State) TransitionTo(id NodeID) {
	s.CurrentNodeID = id
	s.Attempt = 0
	s.History = append(s.History, id)
	if id.IsTerminal() {
		s.Status = StatusTerminated
	}
}

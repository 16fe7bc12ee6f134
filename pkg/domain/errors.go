package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the root of every script grammar failure.
	ErrParse = errors.New("parse error")

	// ErrNoOptions is returned when a branching node declares no options.
	ErrNoOptions = errors.New("branching node has no options")

	// ErrDanglingDestination is returned when a transition points outside the script.
	ErrDanglingDestination = errors.New("destination is not a node")

	// ErrUnknownNode is returned when a NodeID does not index the list.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidChoice is returned when a branching answer does not select an option.
	// It is recoverable: the session stays on the same node.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrSessionTerminated is returned when operating on a halted session.
	ErrSessionTerminated = errors.New("session terminated")

	// ErrScriptNotFound is returned by loaders when the script source does not exist.
	ErrScriptNotFound = errors.New("script not found")
)

// DanglingDestinationError reports a transition to a NodeID that is neither
// a node of the list nor the terminal sentinel.
type DanglingDestinationError struct {
	From NodeID
	To   NodeID
}

func (e *DanglingDestinationError) Error() string {
	return fmt.Sprintf("node %s: destination %d is not a node", e.From, int(e.To))
}

func (e *DanglingDestinationError) Unwrap() error {
	return ErrDanglingDestination
}

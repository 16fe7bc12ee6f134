package runtime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// Reasons attached to InvalidChoiceError.
const (
	ReasonEmpty      = "empty"
	ReasonNotNumeric = "not_numeric"
	ReasonOutOfRange = "out_of_range"
)

// InvalidChoiceError reports a branching answer that selects no option.
// The session stays on the same node.
type InvalidChoiceError struct {
	NodeID  domain.NodeID
	Input   string
	Reason  string
	Options int
}

func (e *InvalidChoiceError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "no choice entered"
	case ReasonNotNumeric:
		return fmt.Sprintf("unrecognized input: %q", e.Input)
	}
	return fmt.Sprintf("not a valid option: %q (choose 1-%d)", e.Input, e.Options)
}

func (e *InvalidChoiceError) Unwrap() error {
	return domain.ErrInvalidChoice
}

// Navigate determines the next state based on one line of input.
// The given state is never modified. When the input is rejected the returned
// state is an unchanged copy and the error matches domain.ErrInvalidChoice.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	node, err := e.currentNode(state)
	if err != nil {
		return nil, err
	}

	input = trimLineEnding(input)
	next := state.Clone()

	switch n := node.(type) {
	case *domain.Question:
		e.navigateQuestion(ctx, next, n, input)
		return next, nil

	case *domain.Branching:
		if err := e.navigateBranching(ctx, next, n, input); err != nil {
			return next, err
		}
		return next, nil

	case *domain.Terminating:
		e.transition(ctx, next, n, domain.TerminalNodeID)
		e.logger.Debug("session terminated", "session_id", next.SessionID)
		return next, nil
	}

	return nil, fmt.Errorf("node %s: unsupported node type %T", state.CurrentNodeID, node)
}

func (e *Engine) navigateQuestion(ctx context.Context, next *domain.State, q *domain.Question, input string) {
	// An exhausted (or empty) prompt list fails without looking at input.
	if next.Attempt >= len(q.Prompts) {
		e.logger.Debug("prompts exhausted", "session_id", next.SessionID, "node_id", next.CurrentNodeID)
		e.transition(ctx, next, q, q.Fail)
		return
	}

	if input == "" {
		next.Attempt++
		if next.Attempt == len(q.Prompts) {
			e.logger.Debug("prompts exhausted", "session_id", next.SessionID, "node_id", next.CurrentNodeID)
			e.transition(ctx, next, q, q.Fail)
		}
		return
	}

	next.Env.Set(q.Variable, input)
	e.emitInput(ctx, domain.EventVariableSet, next, input, q.Variable, "")
	e.transition(ctx, next, q, q.Success)
}

func (e *Engine) navigateBranching(ctx context.Context, next *domain.State, b *domain.Branching, input string) error {
	choice, err := e.parseChoice(b, next.CurrentNodeID, input)
	if err != nil {
		e.logger.Debug("invalid choice",
			"session_id", next.SessionID,
			"node_id", next.CurrentNodeID,
			"reason", err.Reason,
		)
		e.emitInput(ctx, domain.EventInvalidInput, next, input, b.Variable, err.Reason)
		return err
	}

	opt := b.Options[choice-1]
	next.Env.Set(b.Variable, opt.Text)
	e.emitInput(ctx, domain.EventVariableSet, next, opt.Text, b.Variable, "")
	e.transition(ctx, next, b, opt.Destination)
	return nil
}

func (e *Engine) parseChoice(b *domain.Branching, id domain.NodeID, input string) (int, *InvalidChoiceError) {
	invalid := &InvalidChoiceError{NodeID: id, Input: input, Options: len(b.Options)}

	if input == "" {
		invalid.Reason = ReasonEmpty
		return 0, invalid
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		invalid.Reason = ReasonNotNumeric
		return 0, invalid
	}
	if n < 1 || n > len(b.Options) {
		invalid.Reason = ReasonOutOfRange
		return 0, invalid
	}
	return n, nil
}

// trimLineEnding strips one trailing "\n" or "\r\n".
func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

package runner

import (
	"context"

	"github.com/aretw0/winnow/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the actions to the user.
	// Returns true if the actions ask for a line of input.
	Output(ctx context.Context, actions []domain.ActionRequest) (bool, error)

	// Input reads one line from the user, without its line ending.
	// It returns io.EOF once the source is exhausted.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. a rejected choice).
	// This is distinct from content rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// StepFinisher is implemented by handlers that mark the end of every engine step.
type StepFinisher interface {
	FinishStep(ctx context.Context) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

package ports

import (
	"context"

	"github.com/aretw0/winnow/pkg/domain"
)

// Engine defines the interface for state machine cores that do not keep session state.
// The runner drives any implementation one line at a time.
type Engine interface {
	// Start creates the initial state for a session.
	Start(ctx context.Context, sessionID string) *domain.State

	// Render calculates the presentation (actions) for a given state without advancing it.
	// The boolean reports whether a line of input must be read before Navigate.
	Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error)

	// Navigate progresses the state machine based on input, returning the new state.
	Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error)
}

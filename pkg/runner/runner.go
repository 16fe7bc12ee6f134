package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
)

// Messages reported through SystemOutput when a choice is rejected.
const (
	MsgInvalidOption = "Not a valid option!"
	MsgEmptyChoice   = "Please enter the number of an option"
	MsgUnrecognized  = "Unrecognized input: %s"
)

// Runner handles the execution loop of the winnow engine using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, one is built from Headless and Renderer.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Headless selects the JSON handler when Handler is nil.
	Headless bool

	// Renderer is applied to content by the default text handler.
	Renderer ContentRenderer

	// SessionID is used when Run has to start the session itself.
	SessionID string
}

// NewRunner creates a new Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run executes the engine loop until the session reaches the terminal sentinel.
// If initialState is nil, engine.Start is called to create a new state.
//
// The returned state is the last one reached. Exhausted input ends the run without
// error, except that EOF on a farewell counts as the acknowledgement line.
// Context cancellation aborts with ctx.Err().
func (r *Runner) Run(ctx context.Context, engine ports.Engine, initialState *domain.State) (*domain.State, error) {
	handler := r.resolveHandler()
	logger := r.logger()

	state := initialState
	if state == nil {
		state = engine.Start(ctx, r.SessionID)
	}

	for !state.Terminated() {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		// A. Render
		actions, needsInput, err := engine.Render(ctx, state)
		if err != nil {
			return state, fmt.Errorf("render error: %w", err)
		}

		// B. Output
		if _, err := handler.Output(ctx, actions); err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		// C. Input
		var input string
		if needsInput {
			input, err = handler.Input(ctx)
			if err != nil {
				if ctx.Err() != nil {
					logger.Debug("input cancelled", "err", ctx.Err())
					return state, ctx.Err()
				}
				if !errors.Is(err, io.EOF) {
					return state, fmt.Errorf("input error: %w", err)
				}
				if !awaitsAcknowledge(actions) {
					logger.Info("input closed before the dialog finished",
						"session_id", state.SessionID,
						"node_id", state.CurrentNodeID,
					)
					return state, nil
				}
			}
		}

		// D. Navigate
		next, err := engine.Navigate(ctx, state, input)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidChoice) {
				return state, fmt.Errorf("navigation error: %w", err)
			}
			if err := handler.SystemOutput(ctx, invalidChoiceMessage(err, input)); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
		}
		if next != nil {
			state = next
		}

		if f, ok := handler.(StepFinisher); ok {
			if err := f.FinishStep(ctx); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
		}
	}

	logger.Debug("session completed", "session_id", state.SessionID, "steps", len(state.History))
	return state, nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	if r.Headless {
		r.Handler = NewJSONHandler(os.Stdin, os.Stdout)
	} else {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	}
	return r.Handler
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.NewNop()
	}
	return r.Logger
}

func awaitsAcknowledge(actions []domain.ActionRequest) bool {
	for _, act := range actions {
		if req, ok := act.Payload.(domain.InputRequest); ok && act.Type == domain.ActionRequestInput {
			return req.Type == domain.InputAcknowledge
		}
	}
	return false
}

func invalidChoiceMessage(err error, input string) string {
	var choiceErr *runtime.InvalidChoiceError
	if !errors.As(err, &choiceErr) {
		return MsgInvalidOption
	}
	switch choiceErr.Reason {
	case runtime.ReasonOutOfRange:
		return MsgInvalidOption
	case runtime.ReasonEmpty:
		return MsgEmptyChoice
	}
	return fmt.Sprintf(MsgUnrecognized, input)
}

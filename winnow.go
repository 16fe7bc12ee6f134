package winnow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/winnow/internal/compiler"
	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/pkg/adapters/file"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
)

// Engine is the high-level entry point for the winnow library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.ScriptLoader
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom ScriptLoader, bypassing the default file loader.
func WithLoader(l ports.ScriptLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New loads, parses and prepares a script.
// By default the script is read from scriptPath (input.txt when empty).
// If WithLoader is provided, scriptPath only names the engine.
func New(ctx context.Context, scriptPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		eng.loader = file.NewLoader(scriptPath)
	}

	eng.Name = eng.loader.Source()
	if scriptPath != "" {
		eng.Name = filepath.Base(scriptPath)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.logger = eng.logger.With("script", eng.Name)

	text, err := eng.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	nodes, err := compiler.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", eng.loader.Source(), err)
	}
	eng.logger.Debug("script parsed", "nodes", nodes.Len(), "source", eng.loader.Source())

	eng.runtime = runtime.NewEngine(nodes,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng, nil
}

// Start creates the initial state of a session and triggers lifecycle hooks.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.State {
	return e.runtime.Start(ctx, sessionID)
}

// Render generates the actions (view) for the current state without transitioning.
// The boolean reports whether a line of input must be read before Navigate.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	return e.runtime.Render(ctx, state)
}

// Navigate determines the next state based on one line of input.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	return e.runtime.Navigate(ctx, state, input)
}

// Inspect returns the parsed nodes for visualization or introspection tools.
func (e *Engine) Inspect() []domain.Node {
	return e.runtime.Inspect()
}

// Nodes returns the parsed node list.
func (e *Engine) Nodes() *domain.NodeList {
	return e.runtime.Nodes()
}

// Loader returns the ScriptLoader the script was read from.
func (e *Engine) Loader() ports.ScriptLoader {
	return e.loader
}

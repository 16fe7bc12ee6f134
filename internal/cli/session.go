package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/presentation/graph"
	"github.com/aretw0/winnow/internal/presentation/tui"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/observability"
	"github.com/aretw0/winnow/pkg/runner"
	"github.com/google/uuid"
)

// RunSession executes a single interactive session.
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out, errOut := opts.streams()
	cfg := opts.Config

	logger, err := createLogger(errOut, opts.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}
	sessionID := uuid.NewString()
	logger = logger.With("session_id", sessionID)

	interactive := !opts.JSON && isInteractive(out)
	if interactive {
		tui.PrintBanner(out, winnow.Version)
	}

	// Hooks
	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = observability.LogHooks(logger)
	}
	if cfg.MetricsAddr != "" {
		ms, err := startMetrics(cfg.MetricsAddr, logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer ms.Close()
		hooks = hooks.Merge(ms.metrics.Hooks())
	}

	// Engine
	loader, release := createLoader(cfg)
	defer release()
	if !opts.JSON {
		fmt.Fprintf(out, "Input file: %s\n\n", loader.Source())
	}
	engine, err := buildEngine(ctx, cfg, loader, logger, hooks)
	if err != nil {
		return err
	}

	// Handler
	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	} else {
		handlerOpts := []runner.TextHandlerOption{
			runner.WithTextHandlerErrWriter(errOut),
			runner.WithMaxInputSize(cfg.MaxInputSize),
		}
		if opts.Markdown {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
		}
		if interactive {
			handlerOpts = append(handlerOpts, runner.WithTextHandlerNotice(tui.NoticeStyle()))
		}
		handler = runner.NewTextHandler(in, out, handlerOpts...)
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithSessionID(sessionID),
	)

	finalState, runErr := r.Run(sigCtx, engine, nil)

	if finalState != nil {
		logger.Info("session finished",
			"node_id", finalState.CurrentNodeID,
			"terminated", finalState.Terminated(),
			"variables", finalState.Env.Len(),
		)
		if opts.TracePath != "" {
			if err := writeTrace(opts.TracePath, engine, finalState); err != nil {
				logger.Warn("failed to write trace", "path", opts.TracePath, "error", err)
			}
		}
	}

	if isInterrupted(runErr) && !opts.JSON && finalState != nil {
		fmt.Fprintln(out)
		printSystemMessage(out, "Interrupted at node %s.", finalState.CurrentNodeID)
	}

	return handleExecutionError(runErr)
}

// writeTrace saves the script graph with the visited path highlighted.
func writeTrace(path string, engine *winnow.Engine, state *domain.State) error {
	overlay := &graph.GraphOverlay{
		VisitedNodes: state.History,
		CurrentNode:  state.CurrentNodeID,
	}
	return os.WriteFile(path, []byte(graph.GenerateMermaid(engine.Inspect(), overlay)), 0o644)
}

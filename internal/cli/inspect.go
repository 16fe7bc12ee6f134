package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/winnow/internal/config"
	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/presentation/graph"
	"github.com/aretw0/winnow/internal/validator"
	"github.com/aretw0/winnow/pkg/domain"
)

// Validate parses the configured script and reports structural issues to out.
// Parse failures always fail; issues fail only when strict is set.
func Validate(ctx context.Context, cfg config.Config, strict bool, out io.Writer) error {
	engine, err := createEngine(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	issues := validator.Validate(engine.Nodes())
	for _, issue := range issues {
		fmt.Fprintf(out, "warning: %s\n", issue)
	}

	if strict {
		if err := validator.Error(issues); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s: %d nodes, %d warnings\n", engine.Loader().Source(), engine.Nodes().Len(), len(issues))
	return nil
}

// Graph writes the Mermaid flowchart of the configured script to out.
func Graph(ctx context.Context, cfg config.Config, out io.Writer) error {
	engine, err := createEngine(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, graph.GenerateMermaid(engine.Inspect(), nil))
	return err
}

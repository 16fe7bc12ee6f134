package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/winnow/pkg/domain"
)

// LogHooks returns lifecycle hooks that write an audit trail to logger at debug level.
// Captured answers are not logged, only the variable name.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "node_enter",
				"session_id", e.SessionID,
				"node_id", e.NodeID,
				"kind", e.NodeKind,
			)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "node_leave",
				"session_id", e.SessionID,
				"node_id", e.NodeID,
				"to", e.To,
				"attempt", e.Attempt,
			)
		},
		OnInvalidInput: func(ctx context.Context, e *domain.InputEvent) {
			logger.DebugContext(ctx, "invalid_input",
				"session_id", e.SessionID,
				"node_id", e.NodeID,
				"reason", e.Reason,
			)
		},
		OnVariableSet: func(ctx context.Context, e *domain.InputEvent) {
			logger.DebugContext(ctx, "variable_set",
				"session_id", e.SessionID,
				"node_id", e.NodeID,
				"variable", e.Variable,
			)
		},
	}
}

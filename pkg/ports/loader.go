package ports

import "context"

// ScriptLoader defines how the engine retrieves the text of a script.
// Implementations must release any resource they acquire before returning,
// and report a missing source with domain.ErrScriptNotFound.
type ScriptLoader interface {
	// Load returns the complete script text.
	Load(ctx context.Context) (string, error)

	// Source describes where the script comes from (path, key), for logs and banners.
	Source() string
}

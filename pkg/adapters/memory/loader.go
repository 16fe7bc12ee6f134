package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/winnow/pkg/domain"
)

// Loader implements ports.ScriptLoader over an in-memory set of named scripts.
type Loader struct {
	scripts map[string]string
	name    string
}

// NewLoader creates a Loader serving the script stored under name.
func NewLoader(scripts map[string]string, name string) *Loader {
	copied := make(map[string]string, len(scripts))
	for k, v := range scripts {
		copied[k] = v
	}
	return &Loader{scripts: copied, name: name}
}

// FromText creates a Loader holding a single anonymous script.
func FromText(text string) *Loader {
	return NewLoader(map[string]string{"inline": text}, "inline")
}

// Load returns the selected script.
func (l *Loader) Load(ctx context.Context) (string, error) {
	text, ok := l.scripts[l.name]
	if !ok {
		return "", fmt.Errorf("%w: memory:%s", domain.ErrScriptNotFound, l.name)
	}
	return text, nil
}

// Source describes the selected script.
func (l *Loader) Source() string {
	return "memory:" + l.name
}

package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aretw0/winnow/pkg/domain"
)

// DefaultScriptPath is used when no script path is given.
const DefaultScriptPath = "input.txt"

// Loader implements ports.ScriptLoader by reading a file from disk.
type Loader struct {
	path string
}

// NewLoader creates a Loader for path, falling back to DefaultScriptPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultScriptPath
	}
	return &Loader{path: path}
}

// Load reads the whole file. The file is closed on every return path.
func (l *Loader) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrScriptNotFound, l.path)
		}
		return "", fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read script %s: %w", l.path, err)
	}
	return string(data), nil
}

// Source returns the file path.
func (l *Loader) Source() string {
	return l.path
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/winnow/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the key read when none is configured.
const DefaultKey = "winnow:script"

// Loader implements ports.ScriptLoader by reading a script stored as a Redis string.
type Loader struct {
	client  *backend.Client
	key     string
	timeout time.Duration
}

// Option configures the Loader.
type Option func(*Loader)

// WithKey sets the key holding the script.
func WithKey(key string) Option {
	return func(l *Loader) {
		if key != "" {
			l.key = key
		}
	}
}

// WithTimeout bounds each Load call. Zero means no extra deadline.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// New creates a Loader with a fresh client.
func New(addr, password string, db int, opts ...Option) *Loader {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Loader using an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the script with GET.
func (l *Loader) Load(ctx context.Context) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	text, err := l.client.Get(ctx, l.key).Result()
	if errors.Is(err, backend.Nil) {
		return "", fmt.Errorf("%w: %s", domain.ErrScriptNotFound, l.Source())
	}
	if err != nil {
		return "", fmt.Errorf("redis error loading script: %w", err)
	}
	return text, nil
}

// Source describes the key being read.
func (l *Loader) Source() string {
	return fmt.Sprintf("redis://%s/%s", l.client.Options().Addr, l.key)
}

// Close releases the underlying client.
func (l *Loader) Close() error {
	return l.client.Close()
}

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/config"
	"github.com/aretw0/winnow/pkg/adapters/file"
	"github.com/aretw0/winnow/pkg/adapters/redis"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
)

// createLoader picks the script source: Redis when an address is configured, the file otherwise.
// The returned release func must be called once the script is loaded.
func createLoader(cfg config.Config) (ports.ScriptLoader, func()) {
	if cfg.Redis.Enabled() {
		l := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithKey(cfg.Redis.Key))
		return l, func() { _ = l.Close() }
	}
	return file.NewLoader(cfg.Script), func() {}
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*winnow.Engine, error) {
	loader, release := createLoader(cfg)
	defer release()
	return buildEngine(ctx, cfg, loader, logger, hooks)
}

// buildEngine loads and parses the script from an already chosen loader.
func buildEngine(ctx context.Context, cfg config.Config, loader ports.ScriptLoader, logger *slog.Logger, hooks domain.LifecycleHooks) (*winnow.Engine, error) {
	name := cfg.Script
	if cfg.Redis.Enabled() {
		name = ""
	}

	engine, err := winnow.New(ctx, name,
		winnow.WithLoader(loader),
		winnow.WithLogger(logger),
		winnow.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

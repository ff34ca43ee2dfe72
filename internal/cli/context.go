package cli

import (
	"context"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "campfire.app"
	configKey contextKey = "campfire.config"
)

// ContextWithApp makes commands run against a, instead of a freshly
// seeded application. Tests use it to inspect state after a command.
func ContextWithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// ContextWithConfig hands the loaded configuration to subcommands
func ContextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by ContextWithConfig
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns the CLI for a command invocation
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := ConfigFromContext(ctx)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg, ctx: ctx, borrowed: true}, nil
	}
	return NewCLI(ctx, cfg)
}

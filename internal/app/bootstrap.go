package app

import (
	"fmt"

	"github.com/thenoetrevino/campfire/internal/config"
	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/store"
)

// Bootstrap seeds a fresh store from the configured fixtures and builds
// an App with the configured latency and author. opts are applied after
// the configuration, so callers can still override any of it.
func Bootstrap(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	seed, err := fixtures.LoadDir(cfg.FixturesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	base := []Option{
		WithLatency(cfg.LatencyProfile()),
		WithAuthor(cfg.Author),
	}
	return New(store.New(seed), append(base, opts...)...), nil
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
)

// Environment variables read by Load
const (
	EnvConfigPath = "CAMPFIRE_CONFIG"
	EnvThemeFile  = "CAMPFIRE_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	// Latency overrides the simulated per-service delays; zero fields keep
	// the defaults. NoLatency turns simulation off entirely.
	Latency   latency.Profile `yaml:"latency"`
	NoLatency bool            `yaml:"no_latency"`

	// Author is the name written on new threads and replies
	Author string `yaml:"author"`

	// FixturesDir holds YAML files that replace the bundled seed data
	FixturesDir string `yaml:"fixtures_dir"`

	LogLevel       string `yaml:"log_level"`
	DefaultProject int    `yaml:"default_project"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from CAMPFIRE_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, or the defaults if it does not exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
// CAMPFIRE_CONFIG wins over XDG_CONFIG_HOME, which wins over ~/.config.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "campfire", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "campfire", "config.yaml"), nil
}

// LatencyProfile returns the effective simulated delays
func (c *Config) LatencyProfile() latency.Profile {
	if c.NoLatency {
		return latency.Zero()
	}
	p := latency.DefaultProfile()
	p.MergeFrom(c.Latency)
	return p
}

// SlogLevel parses LogLevel, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Author == "" {
		c.Author = models.DefaultAuthor
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultProject <= 0 {
		c.DefaultProject = 1
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

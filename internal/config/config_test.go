package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ToggleTask != " " {
		t.Errorf("Default ToggleTask key = %q, want space", defaults.ToggleTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Author != models.DefaultAuthor {
		t.Errorf("Author = %s, want %s", cfg.Author, models.DefaultAuthor)
	}
	if cfg.LatencyProfile() != latency.DefaultProfile() {
		t.Errorf("LatencyProfile = %+v, want defaults", cfg.LatencyProfile())
	}
	if cfg.DefaultProject != 1 {
		t.Errorf("DefaultProject = %d, want 1", cfg.DefaultProject)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigPath, "")

	configDir := filepath.Join(dir, "campfire")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := `
author: Robin
log_level: debug
default_project: 2
latency:
  task: 10ms
  reply: 1s
key_mappings:
  quit: x
theme:
  accent: "#123456"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Author != "Robin" {
		t.Errorf("Author = %s, want Robin", cfg.Author)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	if cfg.DefaultProject != 2 {
		t.Errorf("DefaultProject = %d, want 2", cfg.DefaultProject)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("AddTask = %s, want default a", cfg.KeyMappings.AddTask)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title == "" {
		t.Error("Expected Title color filled from preset")
	}

	p := cfg.LatencyProfile()
	if p.Task != 10*time.Millisecond || p.Reply != time.Second {
		t.Errorf("Expected task 10ms and reply 1s, got %+v", p)
	}
	if p.Project != latency.DefaultProfile().Project {
		t.Errorf("Expected default project latency, got %v", p.Project)
	}
}

func TestLoadConfig_NoLatency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("no_latency: true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.LatencyProfile() != latency.Zero() {
		t.Errorf("Expected zero latency, got %+v", cfg.LatencyProfile())
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("author: [unterminated"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestThemeFileOverride(t *testing.T) {
	dir := t.TempDir()
	theme := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(theme, []byte("theme:\n  title: \"#ABCDEF\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv(EnvThemeFile, theme)

	cfg, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.ColorScheme.Title != "#ABCDEF" {
		t.Errorf("Title = %s, want #ABCDEF", cfg.ColorScheme.Title)
	}
}

func TestPresets(t *testing.T) {
	mono := MonochromeColorScheme()
	if mono.Preset != "monochrome" {
		t.Errorf("Preset = %s, want monochrome", mono.Preset)
	}

	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()
	if scheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want %s", scheme.Accent, mono.Accent)
	}

	def := ColorScheme{}
	def.ApplyDefaults()
	if def.Preset != "default" || def.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default preset filled, got %+v", def)
	}
}

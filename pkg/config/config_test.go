package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HORIZON_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RevealInterval != 3*time.Second {
		t.Fatalf("expected 3s interval, got %s", cfg.RevealInterval)
	}
	if cfg.Theme != ThemeDark || !cfg.DarkMode() {
		t.Fatalf("expected dark theme by default, got %q", cfg.Theme)
	}
	if cfg.Dedupe {
		t.Fatalf("dedupe should default to off")
	}
	if !cfg.WatchCatalog {
		t.Fatalf("catalog watch should default to on")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`reveal:
  interval: 500ms
display:
  theme: light
journal:
  dedupe: true
catalog:
  path: ` + filepath.Join(dir, "places.yaml") + `
log:
  level: DEBUG
`)
	if err := os.WriteFile(filepath.Join(dir, ".horizon.yaml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HORIZON_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RevealInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", cfg.RevealInterval)
	}
	if cfg.DarkMode() {
		t.Fatalf("light theme should disable dark mode")
	}
	if !cfg.Dedupe {
		t.Fatalf("expected dedupe from file")
	}
	if cfg.CatalogPath != filepath.Join(dir, "places.yaml") {
		t.Fatalf("unexpected catalog path %q", cfg.CatalogPath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lower-cased level, got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HORIZON_CONFIG_PATH", t.TempDir())
	t.Setenv("HORIZON_REVEAL_INTERVAL", "10s")
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RevealInterval != 10*time.Second {
		t.Fatalf("expected env interval, got %s", cfg.RevealInterval)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HORIZON_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	t.Setenv("HORIZON_REVEAL_INTERVAL", "soon")
	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for unparsable interval")
	}

	t.Setenv("HORIZON_REVEAL_INTERVAL", "-1s")
	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for negative interval")
	}

	t.Setenv("HORIZON_REVEAL_INTERVAL", "1s")
	t.Setenv("HORIZON_DISPLAY_THEME", "sepia")
	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]Theme{"": ThemeDark, "Light": ThemeLight, " auto ": ThemeAuto} {
		got, err := ParseTheme(in)
		if err != nil || got != want {
			t.Fatalf("ParseTheme(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

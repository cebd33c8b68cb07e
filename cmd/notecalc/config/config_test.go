package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TUI.Theme.Primary != "#89b4fa" {
		t.Errorf("expected default primary #89b4fa, got %s", cfg.TUI.Theme.Primary)
	}
	if cfg.Formatter.DefaultFormat != "text" {
		t.Errorf("expected default format text, got %s", cfg.Formatter.DefaultFormat)
	}
}

func TestLoadXDGOverridesDefaults(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "notecalc")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	userConfig := "[tui.theme]\nprimary = \"#abcdef\"\n"
	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(userConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TUI.Theme.Primary != "#abcdef" {
		t.Errorf("expected user override #abcdef, got %s", cfg.TUI.Theme.Primary)
	}
	if cfg.TUI.Theme.Error != "#f38ba8" {
		t.Errorf("expected default error preserved, got %s", cfg.TUI.Theme.Error)
	}
}

func TestLoadFallbackConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallbackConfig := "[tui.theme]\naccent = \"#00ff00\"\n"
	fallbackPath := filepath.Join(tmpHome, ".notecalcrc.toml")
	if err := os.WriteFile(fallbackPath, []byte(fallbackConfig), 0644); err != nil {
		t.Fatalf("failed to write fallback config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TUI.Theme.Accent != "#00ff00" {
		t.Errorf("expected fallback override #00ff00, got %s", cfg.TUI.Theme.Accent)
	}
}

func TestBuildStyles(t *testing.T) {
	theme := ThemeConfig{
		Primary:     "#111111",
		Accent:      "#222222",
		Error:       "#333333",
		Muted:       "#444444",
		Output:      "#555555",
		CurrentLine: "#666666",
	}

	styles := theme.BuildStyles()

	if result := styles.Title.Render("test"); result == "" {
		t.Error("expected non-empty rendered output")
	}
	_ = styles.Error.Render("error")
	_ = styles.Output.Render("output")
	_ = styles.Help.Render("help")
}

func TestGetStylesAfterLoad(t *testing.T) {
	if _, err := Reload(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	styles := GetStyles()
	if result := styles.Title.Render("notecalc"); result == "" {
		t.Error("expected non-empty styled output")
	}
}

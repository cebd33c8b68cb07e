package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed defaults.toml
var defaultsToml string

var (
	cfg     *Config
	styles  Styles
	once    sync.Once
	loadErr error
)

// Load initializes configuration from embedded defaults and user config
// files. Safe to call multiple times; only loads once.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
		if cfg != nil {
			styles = cfg.TUI.Theme.BuildStyles()
		}
	})
	return cfg, loadErr
}

// Get returns the loaded configuration. Panics if Load() hasn't run.
func Get() *Config {
	if cfg == nil {
		panic("config.Load() must be called before config.Get()")
	}
	return cfg
}

// GetStyles returns pre-built lipgloss styles from the loaded theme.
func GetStyles() Styles {
	if cfg == nil {
		panic("config.Load() must be called before config.GetStyles()")
	}
	return styles
}

func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		fallbackPath := filepath.Join(home, ".notecalcrc.toml")
		if _, statErr := os.Stat(fallbackPath); statErr == nil {
			v.SetConfigFile(fallbackPath)
			_ = v.MergeInConfig()
		}

		xdgPath := filepath.Join(home, ".config", "notecalc", "config.toml")
		if _, statErr := os.Stat(xdgPath); statErr == nil {
			v.SetConfigFile(xdgPath)
			_ = v.MergeInConfig()
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Reload forces a fresh config load. Use for testing only.
func Reload() (*Config, error) {
	once = sync.Once{}
	cfg = nil
	styles = Styles{}
	loadErr = nil
	return Load()
}

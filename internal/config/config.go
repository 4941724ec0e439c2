// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/accentsync/internal/palette"
)

// Default configuration values.
const (
	DefaultAccent        = "#cb7012"
	DefaultRofiPath      = "~/.config/rofi/shared/colors.rasi"
	DefaultNotifyTimeout = 3000
)

// Config represents the accentsync configuration.
type Config struct {
	Accent  AccentConfig  `toml:"accent"`
	Targets TargetsConfig `toml:"targets"`
	Notify  NotifyConfig  `toml:"notify"`
	Reload  ReloadConfig  `toml:"reload"`
}

// AccentConfig holds the source colour.
type AccentConfig struct {
	Color        string  `toml:"color"`
	DarkenFactor float64 `toml:"darken_factor"`
}

// TargetsConfig holds per-dotfile settings.
type TargetsConfig struct {
	Sway   TargetConfig `toml:"sway"`
	Waybar TargetConfig `toml:"waybar"`
	Rofi   TargetConfig `toml:"rofi"`
}

// TargetConfig configures a single dotfile.
type TargetConfig struct {
	Enabled    bool   `toml:"enabled"`
	Path       string `toml:"path"`        // Empty = default location
	ExpandHome bool   `toml:"expand_home"` // Expand a leading ~/ in Path
}

// NotifyConfig controls the desktop notification sent after a sync.
type NotifyConfig struct {
	Enabled   bool `toml:"enabled"`
	TimeoutMs int  `toml:"timeout_ms"`
}

// ReloadConfig controls which programs are reloaded after a sync.
type ReloadConfig struct {
	Sway   bool `toml:"sway"`
	Waybar bool `toml:"waybar"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Accent: AccentConfig{
			Color:        DefaultAccent,
			DarkenFactor: palette.DefaultFactor,
		},
		Targets: TargetsConfig{
			Sway:   TargetConfig{Enabled: true, ExpandHome: true},
			Waybar: TargetConfig{Enabled: true, ExpandHome: true},
			Rofi:   TargetConfig{Enabled: true, Path: DefaultRofiPath, ExpandHome: true},
		},
		Notify: NotifyConfig{
			Enabled:   false,
			TimeoutMs: DefaultNotifyTimeout,
		},
	}
}

// ConfigHome returns XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return configHome
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigHome(), "accentsync", "config.toml")
}

// SwayPath returns the default sway config path.
func SwayPath() string {
	return filepath.Join(ConfigHome(), "sway", "config")
}

// WaybarPath returns the default Waybar accent stylesheet path.
func WaybarPath() string {
	return filepath.Join(ConfigHome(), "waybar", "accent.css")
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Resolve returns the filesystem path for a target, applying its default
// and home expansion. Without expansion a "~/..." path stays literal and is
// resolved against the working directory.
func (t TargetConfig) Resolve(defaultPath string) (string, error) {
	path := t.Path
	if path == "" {
		path = defaultPath
	}
	if !t.ExpandHome {
		return path, nil
	}
	return ExpandHome(path)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the accent colour and darken factor.
func (c *Config) Validate() error {
	if _, err := palette.New(c.Accent.Color, c.Accent.DarkenFactor); err != nil {
		return err
	}
	if c.Notify.TimeoutMs < 0 {
		return fmt.Errorf("notify.timeout_ms must not be negative: %d", c.Notify.TimeoutMs)
	}
	return nil
}

// Palette derives the palette for the configured accent.
func (c *Config) Palette() (palette.Palette, error) {
	return palette.New(c.Accent.Color, c.Accent.DarkenFactor)
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed and writes atomically via a temp file.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/accentsync/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "#cb7012", cfg.Accent.Color)
	assert.Equal(t, 0.9, cfg.Accent.DarkenFactor)
	assert.True(t, cfg.Targets.Sway.Enabled)
	assert.True(t, cfg.Targets.Waybar.Enabled)
	assert.True(t, cfg.Targets.Rofi.Enabled)
	assert.Equal(t, "~/.config/rofi/shared/colors.rasi", cfg.Targets.Rofi.Path)
	assert.True(t, cfg.Targets.Rofi.ExpandHome)
	assert.False(t, cfg.Notify.Enabled)
	assert.Equal(t, 3000, cfg.Notify.TimeoutMs)
	assert.False(t, cfg.Reload.Sway)
	assert.False(t, cfg.Reload.Waybar)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Accent.Color, cfg.Accent.Color)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[accent]
color = "#3366cc"
darken_factor = 0.7

[targets.sway]
enabled = false

[targets.waybar]
path = "/tmp/waybar/accent.css"

[targets.rofi]
path = "~/rofi/colors.rasi"
expand_home = false

[notify]
enabled = true
timeout_ms = 1500

[reload]
sway = true
waybar = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "#3366cc", cfg.Accent.Color)
	assert.Equal(t, 0.7, cfg.Accent.DarkenFactor)
	assert.False(t, cfg.Targets.Sway.Enabled)
	assert.True(t, cfg.Targets.Waybar.Enabled)
	assert.Equal(t, "/tmp/waybar/accent.css", cfg.Targets.Waybar.Path)
	assert.Equal(t, "~/rofi/colors.rasi", cfg.Targets.Rofi.Path)
	assert.False(t, cfg.Targets.Rofi.ExpandHome)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, 1500, cfg.Notify.TimeoutMs)
	assert.True(t, cfg.Reload.Sway)
	assert.True(t, cfg.Reload.Waybar)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[accent]
color = "#88c0d0"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "#88c0d0", cfg.Accent.Color)

	// Unchanged fields keep their defaults
	assert.Equal(t, palette.DefaultFactor, cfg.Accent.DarkenFactor)
	assert.True(t, cfg.Targets.Sway.Enabled)
	assert.Equal(t, DefaultRofiPath, cfg.Targets.Rofi.Path)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidColour(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[accent]\ncolor = \"#fff\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, palette.ErrInvalidHex)
}

func TestLoadConfig_InvalidFactor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[accent]\ndarken_factor = -1.0\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, palette.ErrInvalidFactor)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Accent.Color = "#bf616a"
	cfg.Targets.Rofi.ExpandHome = false

	require.NoError(t, cfg.Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#bf616a", loaded.Accent.Color)
	assert.False(t, loaded.Targets.Rofi.ExpandHome)
}

func TestConfig_Palette(t *testing.T) {
	p, err := DefaultConfig().Palette()
	require.NoError(t, err)
	assert.Equal(t, "#cb7012", p.Accent)
	assert.Equal(t, "#b66410", p.Derived)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/accentsync/config.toml", ConfigPath())
	assert.Equal(t, "/custom/config/sway/config", SwayPath())
	assert.Equal(t, "/custom/config/waybar/accent.css", WaybarPath())
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.config/accentsync/config.toml", ConfigPath())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		input    string
		expected string
	}{
		{"~/.config/rofi/shared/colors.rasi", "/home/tester/.config/rofi/shared/colors.rasi"},
		{"~", "/home/tester"},
		{"/etc/sway/config", "/etc/sway/config"},
		{"relative/path", "relative/path"},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTargetConfig_Resolve(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	expanded, err := TargetConfig{Path: DefaultRofiPath, ExpandHome: true}.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.config/rofi/shared/colors.rasi", expanded)

	literal, err := TargetConfig{Path: DefaultRofiPath, ExpandHome: false}.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRofiPath, literal)

	fallback, err := TargetConfig{ExpandHome: true}.Resolve("/x/sway/config")
	require.NoError(t, err)
	assert.Equal(t, "/x/sway/config", fallback)
}

package target

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/accentsync/internal/config"
)

// FromConfig builds the enabled targets in sync order.
// A non-empty only restricts the set to those names.
func FromConfig(cfg *config.Config, only []string) ([]Target, error) {
	for _, name := range only {
		if !slices.Contains(Names, name) {
			return nil, fmt.Errorf("unknown target %q (want one of %v)", name, Names)
		}
	}

	entries := []struct {
		name        string
		cfg         config.TargetConfig
		defaultPath string
		build       func(path string) Target
	}{
		{NameSway, cfg.Targets.Sway, config.SwayPath(), func(p string) Target { return NewSway(p) }},
		{NameWaybar, cfg.Targets.Waybar, config.WaybarPath(), func(p string) Target { return NewWaybar(p) }},
		{NameRofi, cfg.Targets.Rofi, config.DefaultRofiPath, func(p string) Target { return NewRofi(p) }},
	}

	var targets []Target
	for _, e := range entries {
		if !e.cfg.Enabled {
			continue
		}
		if len(only) > 0 && !slices.Contains(only, e.name) {
			continue
		}
		path, err := e.cfg.Resolve(e.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}
		targets = append(targets, e.build(path))
	}

	return targets, nil
}

// Package reload asks running desktop programs to pick up rewritten dotfiles.
package reload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/jmylchreest/accentsync/internal/config"
	"github.com/jmylchreest/accentsync/internal/syncer"
	"github.com/jmylchreest/accentsync/internal/target"
)

// DefaultTimeout bounds each reload command.
const DefaultTimeout = 5 * time.Second

// Runner executes a command.
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs the command with os/exec, returning combined output on failure.
func ExecRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, out)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Reloader signals sway and Waybar.
type Reloader struct {
	run     Runner
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Reloader. A nil runner uses ExecRunner.
func New(run Runner, logger *slog.Logger) *Reloader {
	if run == nil {
		run = ExecRunner
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reloader{run: run, timeout: DefaultTimeout, logger: logger}
}

// Sway reloads the sway configuration.
func (r *Reloader) Sway(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.run(ctx, "swaymsg", "reload")
}

// Waybar sends SIGUSR2 to running waybar processes so they reload styles.
// No running waybar is not an error.
func (r *Reloader) Waybar(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.run(ctx, "pkill", "-USR2", "-x", "waybar")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		r.logger.Debug("no waybar process to reload")
		return nil
	}
	return err
}

// AfterSync reloads the programs enabled in cfg whose dotfile changed.
// Dry runs never trigger a reload.
func (r *Reloader) AfterSync(ctx context.Context, cfg config.ReloadConfig, report *syncer.Report) error {
	var errs []error
	for _, res := range report.Results {
		if !res.Changed || res.DryRun {
			continue
		}

		var err error
		switch {
		case res.Name == target.NameSway && cfg.Sway:
			err = r.Sway(ctx)
		case res.Name == target.NameWaybar && cfg.Waybar:
			err = r.Waybar(ctx)
		default:
			continue
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("reload %s: %w", res.Name, err))
			continue
		}
		r.logger.Debug("reloaded", "target", res.Name)
	}
	return errors.Join(errs...)
}

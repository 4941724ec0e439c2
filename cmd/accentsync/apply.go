package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentsync/internal/adapter/output"
	"github.com/jmylchreest/accentsync/internal/config"
	"github.com/jmylchreest/accentsync/internal/notify"
	"github.com/jmylchreest/accentsync/internal/reload"
	"github.com/jmylchreest/accentsync/internal/syncer"
	"github.com/jmylchreest/accentsync/internal/target"
)

var applyOpts struct {
	dryRun  bool
	format  string
	details bool
	compact bool
	notify  bool
	reload  bool
	only    []string
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write the accent colour into every enabled dotfile",
	Long: `Write the accent colour into the sway config, the Waybar stylesheet and
the rofi theme, in that order.

Existing files are rewritten line by line; anything that does not match is
left alone. Missing files and directories are created.

Examples:
  # Use the colour from the config file
  accentsync apply

  # Try a different accent without touching anything
  accentsync apply --color "#3366cc" --dry-run --details

  # Only update Waybar and list the files that changed
  accentsync apply --only waybar --format paths

  # Machine-readable report for scripts
  accentsync apply --format json --compact`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	addApplyFlags(applyCmd)
}

// addApplyFlags registers the sync flags on cmd. The root command carries
// them too so a bare "accentsync" accepts the same options.
func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&applyOpts.dryRun, "dry-run", false,
		"Show what would change without writing files")
	cmd.Flags().StringVarP(&applyOpts.format, "format", "f", string(output.FormatPlain),
		"Output format: plain, json, yaml, paths")
	cmd.Flags().BoolVar(&applyOpts.details, "details", false,
		"Include edit counts and file sizes in plain output")
	cmd.Flags().BoolVar(&applyOpts.compact, "compact", false,
		"Write JSON output on a single line")
	cmd.Flags().BoolVar(&applyOpts.notify, "notify", false,
		"Send a desktop notification when done (overrides notify.enabled)")
	cmd.Flags().BoolVar(&applyOpts.reload, "reload", false,
		"Reload sway and Waybar after writing (overrides [reload])")
	cmd.Flags().StringSliceVar(&applyOpts.only, "only", nil,
		"Limit the sync to these targets (sway, waybar, rofi)")
}

func runApply(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(applyOpts.format)
	if err != nil {
		return err
	}

	report, err := runSync(cmd.Context(), cfg, applyOpts.dryRun)
	if report != nil && len(report.Results) > 0 {
		// Report what was written even if a later target failed.
		formatter := output.NewFormatter(format, output.FormatterOptions{
			ShowDetails: applyOpts.details,
			Compact:     applyOpts.compact,
		})
		if ferr := formatter.Format(cmd.OutOrStdout(), report); ferr != nil {
			logger.Warn("failed to write output", "error", ferr)
		}
	}
	if err != nil {
		return err
	}

	afterSync(cmd.Context(), cfg, report)
	return nil
}

// runSync builds the targets from c and applies its palette.
func runSync(ctx context.Context, c *config.Config, dryRun bool) (*syncer.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := c.Palette()
	if err != nil {
		return nil, err
	}

	targets, err := target.FromConfig(c, applyOpts.only)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets enabled")
	}

	s := syncer.New(targets, syncer.Options{DryRun: dryRun}, logger)
	return s.Run(ctx, p)
}

// afterSync runs the optional reload and notification steps.
// Their failures are logged and never fail the command.
func afterSync(ctx context.Context, c *config.Config, report *syncer.Report) {
	if ctx == nil {
		ctx = context.Background()
	}
	if applyOpts.dryRun {
		return
	}

	reloadCfg := c.Reload
	if applyOpts.reload {
		reloadCfg = config.ReloadConfig{Sway: true, Waybar: true}
	}
	if err := reload.New(nil, logger).AfterSync(ctx, reloadCfg, report); err != nil {
		logger.Warn("reload failed", "error", err)
	}

	if !c.Notify.Enabled && !applyOpts.notify {
		return
	}
	n, err := notify.Connect(logger)
	if err != nil {
		logger.Warn("failed to connect to notification daemon", "error", err)
		return
	}
	defer n.Close()

	timeout := time.Duration(c.Notify.TimeoutMs) * time.Millisecond
	if err := n.NotifyReport(ctx, report, timeout); err != nil {
		logger.Warn("failed to send notification", "error", err)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentsync/internal/adapter/output"
	"github.com/jmylchreest/accentsync/internal/config"
	"github.com/jmylchreest/accentsync/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-apply the accent whenever the config file changes",
	Long: `Apply the accent once, then watch the config file and apply it again
every time the file is saved. Runs until interrupted.

Command-line --color and --factor are ignored after the first run; the
config file is the source of truth while watching.

Example (sway config):
  exec accentsync watch --notify`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&applyOpts.notify, "notify", false,
		"Send a desktop notification after each sync")
	watchCmd.Flags().BoolVar(&applyOpts.reload, "reload", false,
		"Reload sway and Waybar after each sync")
	watchCmd.Flags().StringSliceVar(&applyOpts.only, "only", nil,
		"Limit the sync to these targets (sway, waybar, rofi)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formatter := output.NewFormatter(output.FormatPlain, output.FormatterOptions{})
	apply := func(c *config.Config) {
		report, err := runSync(ctx, c, false)
		if report != nil {
			if ferr := formatter.Format(cmd.OutOrStdout(), report); ferr != nil {
				logger.Warn("failed to write output", "error", ferr)
			}
		}
		if err != nil {
			logger.Error("sync failed", "error", err)
			return
		}
		afterSync(ctx, c, report)
	}

	apply(cfg)

	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fw, err := watch.NewFileWatcher(path, logger)
	if err != nil {
		return err
	}
	fw.SetChangeCallback(func() {
		next, err := config.LoadConfig(path)
		if err != nil {
			logger.Error("failed to reload config, keeping previous", "path", path, "error", err)
			return
		}
		logger.Info("config changed, syncing", "path", path, "accent", next.Accent.Color)
		apply(next)
	})
	if err := fw.Start(); err != nil {
		return err
	}
	defer fw.Stop()

	logger.Info("watching config", "path", path)
	<-ctx.Done()
	return nil
}

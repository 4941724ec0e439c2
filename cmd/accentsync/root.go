// Package main provides the CLI entrypoint for accentsync.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentsync/internal/config"
	"github.com/jmylchreest/accentsync/internal/palette"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		color      string
		factor     float64
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "accentsync",
	Short: "Propagate an accent colour into sway, Waybar and rofi dotfiles",
	Long: `accentsync writes a single accent colour into the dotfiles of
unrelated desktop tools:

  sway     set $accent / $accent_bg at the top of the config
  waybar   color: lines in accent.css
  rofi     selected: lines in colors.rasi

A darker variant of the accent is derived by scaling its HLS lightness.

Running accentsync without a subcommand is the same as "accentsync apply".`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Command-line overrides
		if cmd.Flags().Changed("color") {
			cfg.Accent.Color = globalOpts.color
		}
		if cmd.Flags().Changed("factor") {
			cfg.Accent.DarkenFactor = globalOpts.factor
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger.Debug("loaded config",
			"path", configPath(),
			"accent", cfg.Accent.Color,
			"factor", cfg.Accent.DarkenFactor,
		)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/accentsync/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.color, "color", "",
		"Accent colour as #rrggbb (overrides accent.color)")
	rootCmd.PersistentFlags().Float64Var(&globalOpts.factor, "factor", palette.DefaultFactor,
		"Lightness factor for the derived colour (overrides accent.darken_factor)")

	addApplyFlags(rootCmd)
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// configPath returns the config file in effect.
func configPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}

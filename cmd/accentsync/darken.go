package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentsync/internal/adapter/output"
	"github.com/jmylchreest/accentsync/internal/palette"
)

var darkenCmd = &cobra.Command{
	Use:   "darken [hex...]",
	Short: "Print the derived colour for one or more hex colours",
	Long: `Print the colour accentsync would derive from each argument.

Without arguments the configured accent is used. The lightness factor comes
from --factor or accent.darken_factor.

Examples:
  accentsync darken "#cb7012"
  accentsync darken 88c0d0 bf616a --factor 0.7`,
	RunE: runDarken,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show swatches for the accent and derived colours",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.Palette()
		if err != nil {
			return err
		}
		return output.RenderPreview(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(darkenCmd)
	rootCmd.AddCommand(previewCmd)
}

func runDarken(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{cfg.Accent.Color}
	}

	for _, hex := range args {
		derived, err := palette.Darken(hex, cfg.Accent.DarkenFactor)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Fprintln(cmd.OutOrStdout(), derived)
			continue
		}
		norm, _ := palette.Normalize(hex)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", norm, derived)
	}
	return nil
}

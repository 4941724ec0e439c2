package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/accentsync/internal/palette"
)

// swatchWidth is the width of each colour block in cells.
const swatchWidth = 8

// RenderPreview draws a swatch for the accent and derived colours.
// Colour escapes are only emitted when w is a colour-capable terminal.
func RenderPreview(w io.Writer, p palette.Palette) error {
	r := lipgloss.NewRenderer(w)

	rows := []struct {
		label string
		hex   string
	}{
		{"accent", p.Accent},
		{fmt.Sprintf("derived (x%.2f)", p.Factor), p.Derived},
	}

	for _, row := range rows {
		block := r.NewStyle().
			Background(lipgloss.Color(row.hex)).
			Width(swatchWidth).
			Render("")
		hex := r.NewStyle().
			Foreground(lipgloss.Color(row.hex)).
			Bold(true).
			Render(row.hex)

		line := lipgloss.JoinHorizontal(lipgloss.Center, block, " ", hex, "  ", row.label)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

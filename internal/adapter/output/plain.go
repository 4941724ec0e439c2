package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/accentsync/internal/palette"
	"github.com/jmylchreest/accentsync/internal/syncer"
	"github.com/jmylchreest/accentsync/internal/target"
)

// PlainFormatter writes one human-readable line per target.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes the report as plain text.
// Colours are shown in their own colour when w is a colour-capable terminal.
func (f *PlainFormatter) Format(w io.Writer, report *syncer.Report) error {
	st := newPlainStyles(lipgloss.NewRenderer(w))
	for _, r := range report.Results {
		if _, err := fmt.Fprintln(w, f.formatResult(st, report.Palette, r)); err != nil {
			return err
		}
	}
	return nil
}

type plainStyles struct {
	r      *lipgloss.Renderer
	dryRun lipgloss.Style
	detail lipgloss.Style
}

func newPlainStyles(r *lipgloss.Renderer) plainStyles {
	return plainStyles{
		r:      r,
		dryRun: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		detail: r.NewStyle().Faint(true),
	}
}

// hex renders a colour value in that colour.
func (st plainStyles) hex(v string) string {
	return st.r.NewStyle().Foreground(lipgloss.Color(v)).Bold(true).Render(v)
}

// formatResult formats a single target line.
func (f *PlainFormatter) formatResult(st plainStyles, p palette.Palette, r syncer.Result) string {
	var sb strings.Builder

	if r.DryRun {
		sb.WriteString(st.dryRun.Render("[dry run]"))
		sb.WriteString(" ")
	}

	accent := st.hex(p.Accent)
	switch r.Name {
	case target.NameSway:
		fmt.Fprintf(&sb, "✅ Wrote $accent=%s, $accent_bg=%s at the top of %s", accent, st.hex(p.Derived), r.Path)
	case target.NameWaybar:
		fmt.Fprintf(&sb, "✅ Updated Waybar color to %s in %s", accent, r.Path)
	case target.NameRofi:
		fmt.Fprintf(&sb, "✅ Updated Rofi selected to %s in %s", accent, r.Path)
	default:
		fmt.Fprintf(&sb, "✅ Updated %s in %s", r.Name, r.Path)
	}

	if f.opts.ShowDetails {
		sb.WriteString(" ")
		sb.WriteString(st.detail.Render("(" + details(r) + ")"))
	}

	return sb.String()
}

// details summarises the edit counts and resulting size.
func details(r syncer.Result) string {
	parts := make([]string, 0, 5)
	if r.Created {
		parts = append(parts, "created")
	}
	if r.Edit.Replaced > 0 {
		parts = append(parts, fmt.Sprintf("%d replaced", r.Edit.Replaced))
	}
	if r.Edit.Removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", r.Edit.Removed))
	}
	if r.Edit.Inserted > 0 {
		parts = append(parts, fmt.Sprintf("%d inserted", r.Edit.Inserted))
	}
	if !r.Changed {
		parts = append(parts, "unchanged")
	}
	parts = append(parts, humanize.Bytes(uint64(r.Bytes)))
	return strings.Join(parts, ", ")
}

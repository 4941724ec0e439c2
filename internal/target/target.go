// Package target rewrites the accent colour into individual dotfiles.
package target

import (
	"fmt"
	"regexp"

	"github.com/jmylchreest/accentsync/internal/palette"
)

// Target names.
const (
	NameSway   = "sway"
	NameWaybar = "waybar"
	NameRofi   = "rofi"
)

// Names lists every target in the order a sync applies them.
var Names = []string{NameSway, NameWaybar, NameRofi}

// Edit counts the line changes a target made.
type Edit struct {
	Replaced int `json:"replaced" yaml:"replaced"`
	Removed  int `json:"removed" yaml:"removed"`
	Inserted int `json:"inserted" yaml:"inserted"`
}

// Changed reports whether any line was touched.
func (e Edit) Changed() bool {
	return e.Replaced+e.Removed+e.Inserted > 0
}

// Target rewrites one dotfile's lines for a palette.
type Target interface {
	// Name identifies the target (sway, waybar, rofi).
	Name() string

	// Path is the dotfile the target reads and writes.
	Path() string

	// Apply returns the rewritten lines. It must not modify lines.
	Apply(lines []string, p palette.Palette) ([]string, Edit)
}

// swayDefinition matches an existing $accent or $accent_bg definition.
var swayDefinition = regexp.MustCompile(`^\s*set\s+\$(accent|accent_bg)\b`)

// Sway moves the accent variable definitions to the top of a sway config.
type Sway struct {
	path string
}

// NewSway creates a sway target for path.
func NewSway(path string) *Sway {
	return &Sway{path: path}
}

func (s *Sway) Name() string { return NameSway }
func (s *Sway) Path() string { return s.path }

// Apply drops every $accent/$accent_bg definition and prepends fresh ones
// followed by a blank line. $accent takes the derived colour and $accent_bg
// the accent itself.
func (s *Sway) Apply(lines []string, p palette.Palette) ([]string, Edit) {
	header := []string{
		fmt.Sprintf("set $accent %s\n", p.Derived),
		fmt.Sprintf("set $accent_bg %s\n", p.Accent),
		"\n",
	}

	out := make([]string, 0, len(lines)+len(header))
	out = append(out, header...)

	var edit Edit
	for _, line := range lines {
		if swayDefinition.MatchString(line) {
			edit.Removed++
			continue
		}
		out = append(out, line)
	}
	edit.Inserted = len(header)

	return out, edit
}

// Replacer swaps whole lines that match a property pattern.
// Lines that don't match pass through, and nothing is ever inserted.
type Replacer struct {
	name    string
	path    string
	pattern *regexp.Regexp
	format  string
}

// NewReplacer creates a replace-only target. format receives the accent
// colour and must produce a complete line including its terminator.
func NewReplacer(name, path string, pattern *regexp.Regexp, format string) *Replacer {
	return &Replacer{name: name, path: path, pattern: pattern, format: format}
}

var (
	waybarColor  = regexp.MustCompile(`^\s*color\s*:\s*#([0-9A-Fa-f]{6});`)
	rofiSelected = regexp.MustCompile(`^\s*selected\s*:\s*#[0-9A-Fa-f]{6,8};`)
)

// NewWaybar rewrites `color: #rrggbb;` lines in a Waybar stylesheet.
func NewWaybar(path string) *Replacer {
	return NewReplacer(NameWaybar, path, waybarColor, "    color: %s;\n")
}

// NewRofi rewrites `selected: #rrggbb[aa];` lines in a rofi theme.
func NewRofi(path string) *Replacer {
	return NewReplacer(NameRofi, path, rofiSelected, "    selected:     %s;\n")
}

func (r *Replacer) Name() string { return r.name }
func (r *Replacer) Path() string { return r.path }

// Apply replaces matching lines with the formatted accent line.
func (r *Replacer) Apply(lines []string, p palette.Palette) ([]string, Edit) {
	replacement := fmt.Sprintf(r.format, p.Accent)

	out := make([]string, len(lines))
	var edit Edit
	for i, line := range lines {
		if r.pattern.MatchString(line) {
			out[i] = replacement
			if line != replacement {
				edit.Replaced++
			}
			continue
		}
		out[i] = line
	}

	return out, edit
}

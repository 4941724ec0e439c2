// Package output provides output formatters for sync reports.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/accentsync/internal/syncer"
)

// Formatter formats a sync report for output.
type Formatter interface {
	// Format writes the formatted report to the writer.
	Format(w io.Writer, report *syncer.Report) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatPaths FormatType = "paths"
)

// FormatTypes lists the accepted format names.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML, FormatPaths}

// ParseFormat validates a format name.
func ParseFormat(name string) (FormatType, error) {
	for _, f := range FormatTypes {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", name, FormatTypes)
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPaths:
		return NewPathsFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ShowDetails bool // Append edit counts and size to plain lines
	Compact     bool // Single-line JSON
}

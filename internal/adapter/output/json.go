package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/accentsync/internal/syncer"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the report as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, report *syncer.Report) error {
	encoder := json.NewEncoder(w)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}

package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/accentsync/internal/syncer"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the report as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, report *syncer.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}

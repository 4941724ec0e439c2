package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/accentsync/internal/syncer"
)

// PathsFormatter outputs the path of every changed dotfile, one per line.
// Useful for piping to other commands (e.g., xargs git add).
type PathsFormatter struct{}

// NewPathsFormatter creates a new paths formatter.
func NewPathsFormatter() *PathsFormatter {
	return &PathsFormatter{}
}

// Format writes changed paths to the writer.
func (f *PathsFormatter) Format(w io.Writer, report *syncer.Report) error {
	for _, r := range report.Results {
		if !r.Changed {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Path); err != nil {
			return err
		}
	}
	return nil
}

// Package syncer applies a palette to a set of dotfile targets.
package syncer

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/accentsync/internal/dotfile"
	"github.com/jmylchreest/accentsync/internal/palette"
	"github.com/jmylchreest/accentsync/internal/target"
)

// Result describes what a sync did to one dotfile.
type Result struct {
	Name        string      `json:"name" yaml:"name"`
	Path        string      `json:"path" yaml:"path"`
	Edit        target.Edit `json:"edit" yaml:"edit"`
	LinesBefore int         `json:"lines_before" yaml:"lines_before"`
	LinesAfter  int         `json:"lines_after" yaml:"lines_after"`
	Bytes       int         `json:"bytes" yaml:"bytes"`
	Created     bool        `json:"created" yaml:"created"`
	Changed     bool        `json:"changed" yaml:"changed"`
	DryRun      bool        `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Report is the outcome of one sync run.
type Report struct {
	RunID   string          `json:"run_id" yaml:"run_id"`
	Time    time.Time       `json:"time" yaml:"time"`
	Palette palette.Palette `json:"palette" yaml:"palette"`
	Results []Result        `json:"results" yaml:"results"`
}

// Options configures a Syncer.
type Options struct {
	DryRun bool // Compute results without writing files
}

// Syncer writes a palette into its targets, one after another.
type Syncer struct {
	targets []target.Target
	opts    Options
	logger  *slog.Logger
}

// New creates a Syncer for targets.
func New(targets []target.Target, opts Options, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{targets: targets, opts: opts, logger: logger}
}

// Run applies p to every target in order. The first error stops the run;
// targets written before it stay written and are listed in the report.
func (s *Syncer) Run(ctx context.Context, p palette.Palette) (*Report, error) {
	report := &Report{
		RunID:   newRunID(),
		Time:    time.Now(),
		Palette: p,
	}

	for _, t := range s.targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := s.apply(t, p)
		if err != nil {
			return report, fmt.Errorf("%s (%s): %w", t.Name(), t.Path(), err)
		}
		report.Results = append(report.Results, res)
	}

	return report, nil
}

// apply rewrites a single target.
func (s *Syncer) apply(t target.Target, p palette.Palette) (Result, error) {
	f := dotfile.New(t.Path())

	lines, exists, err := f.Load()
	if err != nil {
		return Result{}, err
	}

	out, edit := t.Apply(lines, p)
	res := Result{
		Name:        t.Name(),
		Path:        t.Path(),
		Edit:        edit,
		LinesBefore: len(lines),
		LinesAfter:  len(out),
		Created:     !exists,
		Changed:     !exists || dotfile.JoinLines(lines) != dotfile.JoinLines(out),
		DryRun:      s.opts.DryRun,
	}

	if s.opts.DryRun {
		res.Bytes = len(dotfile.JoinLines(out))
		s.logger.Debug("dry run, not writing", "target", t.Name(), "path", t.Path(), "changed", res.Changed)
		return res, nil
	}

	n, err := f.Save(out)
	if err != nil {
		return Result{}, err
	}
	res.Bytes = n

	s.logger.Debug("updated dotfile",
		"target", t.Name(),
		"path", t.Path(),
		"replaced", edit.Replaced,
		"removed", edit.Removed,
		"inserted", edit.Inserted,
		"created", res.Created,
	)

	return res, nil
}

func newRunID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return ""
	}
	return id.String()
}

// Package dotfile reads and writes text files as line slices.
package dotfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a dotfile addressed by path.
type File struct {
	path string
}

// New creates a File for path.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the file into lines, each keeping its terminator.
// "\r\n" and lone "\r" line endings are read as "\n".
// A missing file yields no lines and exists=false.
func (f *File) Load() (lines []string, exists bool, err error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return SplitLines(NormalizeNewlines(string(data))), true, nil
}

// Save overwrites the file with lines, creating the parent directory.
// Writes go through symlinks, so stow-managed dotfiles stay linked.
// It returns the number of bytes written.
func (f *File) Save(lines []string) (int, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}

	data := JoinLines(lines)
	if err := os.WriteFile(f.path, []byte(data), mode); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return len(data), nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines converts "\r\n" and "\r" line endings to "\n".
func NormalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// SplitLines splits s after every '\n'.
// The last line is returned without a terminator if s does not end in one.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines as they are.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

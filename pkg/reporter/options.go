package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const bufWriterSize = 64 * 1024

// Options configures a reporter.
type Options struct {
	// Writer receives the report. The CLI uses stderr whenever generated
	// HTML is printed to stdout.
	Writer io.Writer

	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowContext prints the failing source line with a caret.
	ShowContext bool

	ShowSummary bool

	// Verbose also lists files that were written.
	Verbose bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir shortens displayed paths that lie beneath it.
	WorkingDir string
}

// DefaultOptions reports text to stderr with context and a summary.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}

// displayPath makes path relative to the working directory when it lies
// beneath it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

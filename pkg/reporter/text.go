package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/jirai/pkg/runner"
)

// TextReporter prints each failure with its source line and a one-line
// summary. Verbose mode also lists written files.
type TextReporter struct {
	termWriter
}

// NewTextReporter returns a text reporter for opts.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{termWriter: newTermWriter(opts)}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to compile."))
		}
		return 0, nil
	}

	var failed int
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			source := ""
			if r.opts.ShowContext {
				source = file.Source
			}
			fmt.Fprint(r.bw, r.styles.FormatError(path, file.Error, source))
			failed++
			continue
		}

		if r.opts.Verbose && file.Written {
			fmt.Fprintf(r.bw, "  %s %s %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Dim.Render("->"),
				r.opts.displayPath(file.OutputPath),
			)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failed, nil
}

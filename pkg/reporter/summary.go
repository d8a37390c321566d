package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/jirai/pkg/runner"
)

// SummaryReporter lists failures without source context, followed by a
// statistics block.
type SummaryReporter struct {
	termWriter
}

// NewSummaryReporter returns a summary reporter for opts.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{termWriter: newTermWriter(opts)}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	failures := result.Failures()
	for _, file := range failures {
		fmt.Fprint(r.bw, r.styles.FormatError(r.opts.displayPath(file.Path), file.Error, ""))
	}

	var stats runner.Stats
	if result != nil {
		stats = result.Stats
	}
	fmt.Fprint(r.bw, r.styles.FormatSummary(stats))

	return len(failures), nil
}

// Package reporter writes the outcome of a compile run for humans or tools.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/jirai/pkg/runner"
)

// Reporter writes a run result and returns the number of failed files.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New returns the reporter for opts.Format, text when unset. A nil
// Writer means stderr.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	build, ok := constructors[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return build(opts), nil
}

package reporter

import (
	"bufio"

	"github.com/yaklabco/jirai/internal/ui/pretty"
)

// termWriter is the buffered, styled output shared by the terminal
// reporters.
type termWriter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

func newTermWriter(opts Options) termWriter {
	return termWriter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// flush writes buffered output and records a flush failure in *err unless
// it already holds an error.
func (w *termWriter) flush(err *error) {
	if flushErr := w.bw.Flush(); *err == nil {
		*err = flushErr
	}
}

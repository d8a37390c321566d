package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yaklabco/jirai/pkg/diag"
	"github.com/yaklabco/jirai/pkg/runner"
)

// jsonVersion is bumped when the document shape changes incompatibly.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary runner.Stats     `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path       string     `json:"path"`
	SHA256     string     `json:"sha256,omitempty"`
	Output     string     `json:"output,omitempty"`
	Written    bool       `json:"written"`
	Unchanged  bool       `json:"unchanged"`
	DurationMS float64    `json:"duration_ms"`
	HTML       string     `json:"html,omitempty"`
	Error      *JSONError `json:"error,omitempty"`
}

// JSONError describes why a file failed. Line and Column are 1-based and
// omitted when the failure has no source position.
type JSONError struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = result.Stats
	output.Files = make([]JSONFileResult, 0, len(result.Files))

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       r.opts.displayPath(file.Path),
			SHA256:     file.SourceHash,
			Written:    file.Written,
			Unchanged:  file.Unchanged,
			DurationMS: float64(file.Duration.Microseconds()) / 1000,
			HTML:       file.HTML,
		}
		if file.Written || file.Unchanged {
			fileResult.Output = r.opts.displayPath(file.OutputPath)
		}
		if file.Error != nil {
			fileResult.Error = newJSONError(file.Error)
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}

func newJSONError(err error) *JSONError {
	var diagErr *diag.Error
	if !errors.As(err, &diagErr) {
		return &JSONError{Message: err.Error()}
	}

	jsonErr := &JSONError{Kind: diagErr.Kind.String(), Message: diagErr.Message}
	if diagErr.HasPos {
		jsonErr.Line = diagErr.Pos.Line + 1
		jsonErr.Column = diagErr.Pos.Column + 1
	}
	return jsonErr
}

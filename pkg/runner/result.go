package runner

import "time"

// FileOutcome is the result of compiling one file.
type FileOutcome struct {
	// Path is the source file that was compiled.
	Path string

	// OutputPath is where the HTML was or would be written.
	OutputPath string

	// HTML holds the generated markup when Options.NoWrite is set.
	HTML string

	// Source holds the file text when compilation failed, for diagnostics.
	Source string

	// SourceHash is the hex SHA-256 of the source, empty if it could not
	// be read.
	SourceHash string

	// Written reports that OutputPath was created or replaced.
	Written bool

	// Unchanged reports that OutputPath already held identical content.
	Unchanged bool

	// Duration is the time spent on this file.
	Duration time.Duration

	// Error is set if the file could not be read, compiled or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered"`

	// FilesCompiled is the number of files compiled without error.
	FilesCompiled int `json:"files_compiled"`

	// FilesWritten is the number of output files created or replaced.
	FilesWritten int `json:"files_written"`

	// FilesUnchanged is the number of outputs left as they were.
	FilesUnchanged int `json:"files_unchanged"`

	// FilesErrored is the number of files that failed.
	FilesErrored int `json:"files_errored"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains one outcome per discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Duration is the wall time of the run.
	Duration time.Duration
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Failures returns the outcomes that carry an error.
func (r *Result) Failures() []FileOutcome {
	if r == nil {
		return nil
	}
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// accumulate appends an outcome and updates the statistics.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesCompiled++
	switch {
	case outcome.Written:
		r.Stats.FilesWritten++
	case outcome.Unchanged:
		r.Stats.FilesUnchanged++
	}
}

package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/jirai/pkg/fsutil"
	"github.com/yaklabco/jirai/pkg/runner"
)

// Exit codes for jirai.
const (
	// ExitSuccess indicates every source compiled.
	ExitSuccess = 0

	// ExitCompileErrors indicates at least one source failed to compile.
	ExitCompileErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors returned by commands to select an exit code.
var (
	// ErrCompileFailed signals that failures were already reported.
	ErrCompileFailed = errors.New("compilation failed")

	// ErrConfig wraps configuration loading and validation failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage wraps flag and argument errors.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitCompileErrors
	}
	return ExitSuccess
}

// ExitCodeForError maps an error returned by a command to an exit code.
func ExitCodeForError(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCompileFailed):
		return ExitCompileErrors
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrInvalidEncoding),
		errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

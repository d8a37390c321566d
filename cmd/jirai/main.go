// Command jirai compiles Jirai markup to HTML.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/jirai/internal/cli"
	"github.com/yaklabco/jirai/internal/logging"
)

// Set with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // ldflags targets.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// An interrupt cancels the run; files already written stay written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	err := root.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// The reporter has already printed compile failures.
	if !errors.Is(err, cli.ErrCompileFailed) {
		logging.Default().Error("jirai failed", logging.FieldError, err)
	}
	return cli.ExitCodeForError(err)
}

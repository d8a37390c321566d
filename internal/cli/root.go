// Package cli implements the jirai command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/jirai/internal/logging"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	debug  bool
	config string
	color  string
}

// NewRootCommand assembles the jirai command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "jirai",
		Short: "Compile Jirai markup to HTML",
		Long: `jirai compiles Jirai, a small line-oriented markup language, to HTML.

Headings start with "<3", list items with "~", and inline elements cover
bold, italic, code, block quotes, links and images. Sources can be
compiled as bare fragments or as complete "(^-^)" delimited documents.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, newLogger(cmd.ErrOrStderr(), flags.debug)))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	persistent := root.PersistentFlags()
	persistent.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	persistent.StringVar(&flags.config, "config", "", "path to config file")
	persistent.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")

	// Flag parse errors are usage errors for every subcommand.
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		newCompileCommand(),
		newInitCommand(),
		newConfigCommand(),
		newVersionCommand(info),
	)

	NewHelpFormatter(flags.color, os.Stdout).ApplyToCommand(root)

	return root
}

// newLogger picks the interactive style when stderr is a terminal and
// plain records otherwise.
func newLogger(w io.Writer, debug bool) *log.Logger {
	var logger *log.Logger
	if f, ok := w.(*os.File); ok && f == os.Stderr && isatty.IsTerminal(f.Fd()) {
		logger = logging.NewInteractive()
	} else {
		logger = logging.NewWithWriter(w, "info")
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

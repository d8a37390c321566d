package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jirai/internal/configloader"
	"github.com/yaklabco/jirai/internal/logging"
	"github.com/yaklabco/jirai/internal/ui/pretty"
	"github.com/yaklabco/jirai/pkg/compiler"
	"github.com/yaklabco/jirai/pkg/config"
	"github.com/yaklabco/jirai/pkg/diag"
	"github.com/yaklabco/jirai/pkg/fsutil"
	"github.com/yaklabco/jirai/pkg/reporter"
	"github.com/yaklabco/jirai/pkg/runner"
)

// stdinArg selects standard input as the only source.
const stdinArg = "-"

// stdinName labels diagnostics for standard input.
const stdinName = "<stdin>"

type compileFlags struct {
	format     string
	document   bool
	ignore     []string
	extensions []string
	noContext  bool
	compact    bool
	verbose    bool
}

func newCompileCommand() *cobra.Command {
	cfg := &config.Config{}
	flags := &compileFlags{}

	cmd := &cobra.Command{
		Use:   "compile [paths...]",
		Short: "Compile Jirai files to HTML",
		Long:  compileLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, cfg, flags)
		},
	}

	addCompileFlags(cmd, cfg, flags)

	return cmd
}

const compileLongDescription = `Compile Jirai sources to HTML.

Each file is written beside its source with an .html extension, or under
--output-dir mirroring the directory layout. Files whose output is already
up to date are left untouched.

With no paths and piped input, or with "-" as the only path, the source is
read from standard input and the HTML is printed to standard output.`

const compileExamples = `  jirai compile                        # Compile the current directory
  jirai compile docs/ -o public        # Write HTML under public/
  jirai compile page.jirai --stdout    # Print HTML instead of writing it
  echo '<3 Hi' | jirai compile         # Compile standard input
  jirai compile --document --escape    # Full pages with escaped text
  jirai compile --format json          # Machine-readable report`

func addCompileFlags(cmd *cobra.Command, cfg *config.Config, flags *compileFlags) {
	cmd.Example = compileExamples

	cmd.Flags().BoolVarP(&cfg.Minify, "minify", "m", false, "join HTML fragments without newlines")
	cmd.Flags().BoolVar(&cfg.AltEnforcing, "alt-enforcing", false, "fail on links and images without alt text")
	cmd.Flags().BoolVar(&cfg.EscapeHTML, "escape", false, "HTML-escape user text and attributes")
	cmd.Flags().BoolVar(&cfg.AnnotateCode, "annotate-code", false, "add language-* classes to inline code")
	cmd.Flags().BoolVar(&flags.document, "document", false, "compile (^-^) delimited documents into full pages")
	cmd.Flags().StringVar(&cfg.Title, "title", "", "page title for documents (default: first heading)")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output-dir", "o", "", "directory for generated HTML")
	cmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "print generated HTML instead of writing files")
	cmd.Flags().BoolVarP(&cfg.Force, "force", "f", false, "rewrite outputs even when unchanged")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "source file extensions (default .jirai)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text, json, summary")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in errors")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list every written file")
}

func runCompile(cmd *cobra.Command, args []string, cfg *config.Config, flags *compileFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg.Format = config.OutputFormat(flags.format)
	if flags.document {
		cfg.SourceKind = config.SourceKindDocument
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = flags.extensions
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldMinify, finalCfg.Minify,
		logging.FieldAltEnforcing, finalCfg.AltEnforcing,
		logging.FieldEscapeHTML, finalCfg.EscapeHTML,
		logging.FieldSourceKind, finalCfg.SourceKind,
		logging.FieldJobs, finalCfg.Jobs,
	)

	if readsStdin(args, cmd.InOrStdin()) {
		return compileStdin(ctx, cmd, finalCfg, colorMode, !flags.noContext)
	}

	runOpts := runner.OptionsFromConfig(finalCfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting compile run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("compile run failed: %w", err)
	}

	logger.Debug("compile run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesCompiled, result.Stats.FilesCompiled,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesUnchanged, result.Stats.FilesUnchanged,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldDuration, result.Duration.Round(time.Millisecond),
	)
	for _, file := range result.Files {
		logFileOutcome(logger, file)
	}

	reportWriter := cmd.OutOrStdout()
	if finalCfg.Stdout {
		for _, file := range result.Files {
			if file.Error == nil {
				fmt.Fprintln(cmd.OutOrStdout(), file.HTML)
			}
		}
		reportWriter = cmd.ErrOrStderr()
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      reportWriter,
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: !finalCfg.Stdout || flags.verbose,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrCompileFailed
	}
	return nil
}

// readsStdin reports whether the source comes from standard input: either
// "-" is the only argument, or no paths were given and input is piped.
func readsStdin(args []string, in io.Reader) bool {
	if len(args) == 1 && args[0] == stdinArg {
		return true
	}
	if len(args) > 0 {
		return false
	}

	f, ok := in.(*os.File)
	if !ok || term.IsTerminal(int(f.Fd())) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeNamedPipe != 0
}

// compileStdin compiles standard input and prints the HTML.
func compileStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config, colorMode string, showContext bool) error {
	logger := logging.FromContext(ctx)

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read %s: %w", stdinName, err)
	}
	source, err := fsutil.DecodeSource(stdinName, data)
	if err != nil {
		return err
	}

	logger.Debug("compiling", logging.FieldInput, stdinName)

	html, err := compiler.Compile(source, compiler.OptionsFromConfig(cfg))
	if err != nil {
		logger.Debug("compile failed", diagFields(stdinName, err)...)
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
		if !showContext {
			source = ""
		}
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatError(stdinName, err, source))
		return ErrCompileFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}

// logFileOutcome records one file's result at debug level.
func logFileOutcome(logger *log.Logger, file runner.FileOutcome) {
	switch {
	case file.Error != nil:
		logger.Debug("compile failed", append(diagFields(file.Path, file.Error), logging.FieldDuration, file.Duration)...)
	case file.Written:
		logger.Debug("wrote output", logging.FieldPath, file.Path, logging.FieldOutput, file.OutputPath,
			logging.FieldDuration, file.Duration)
	case file.Unchanged:
		logger.Debug("output unchanged", logging.FieldPath, file.Path, logging.FieldOutput, file.OutputPath,
			logging.FieldDuration, file.Duration)
	default:
		logger.Debug("compiled", logging.FieldPath, file.Path, logging.FieldDuration, file.Duration)
	}
}

// diagFields returns log fields describing a compile error.
func diagFields(path string, err error) []any {
	fields := []any{logging.FieldPath, path}
	if kind := diag.KindOf(err); kind != 0 {
		fields = append(fields, logging.FieldKind, kind)
	}
	if pos, ok := diag.Position(err); ok {
		fields = append(fields, logging.FieldPosition, pos)
	}
	return append(fields, logging.FieldError, err)
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirai/internal/logging"
	"github.com/yaklabco/jirai/pkg/config"
	"github.com/yaklabco/jirai/pkg/fsutil"
)

// Default file names written by init.
const (
	defaultYAMLConfigName = ".jirai.yml"
	defaultTOMLConfigName = ".jirai.toml"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a jirai configuration file",
		Long: `Create a commented .jirai.yml configuration file in the current directory.
Every option is listed with its default so the file can be edited in place.`,
		Example: `  jirai init                       Create .jirai.yml
  jirai init --format toml         Create .jirai.toml instead
  jirai init --output site.yml     Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "file format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .jirai.yml or .jirai.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	if flags.format != config.TemplateYAML && flags.format != config.TemplateTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultYAMLConfigName
		if flags.format == config.TemplateTOML {
			outputPath = defaultTOMLConfigName
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(flags.format)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'jirai config show' to see the resolved settings")

	return nil
}

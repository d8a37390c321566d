package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirai/internal/configloader"
	"github.com/yaklabco/jirai/internal/logging"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect jirai configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigEnvCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging system, user, project and explicit
config files with JIRAI_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")

	return cmd
}

func runConfigShow(cmd *cobra.Command, format string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	for _, path := range result.LoadedFrom {
		logger.Debug("loaded configuration", logging.FieldPath, path)
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = result.Config.ToYAML()
	case "toml":
		data, err = result.Config.ToTOML()
	default:
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, format)
	}
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the JIRAI_* environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := configloader.ListEnvVars()
			names := make([]string, 0, len(vars))
			width := 0
			for name := range vars {
				names = append(names, name)
				width = max(width, len(name))
			}
			slices.Sort(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s\n", name, strings.Repeat(" ", width-len(name)), vars[name])
			}
		},
	}
}

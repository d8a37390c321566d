// Package configloader resolves the effective jirai configuration from
// files, the environment and command line flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/jirai/pkg/config"
)

// LoadOptions controls which sources Load consults.
type LoadOptions struct {
	// WorkingDir anchors the project config search. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath is the --config file.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds values set by flags and overrides everything else.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// Paths are the discovered files, including skipped layers.
	Paths *ConfigPaths

	// LoadedFrom lists the files merged into Config, lowest precedence first.
	LoadedFrom []string

	Warnings []string
}

// skipped reports which scopes opts excludes.
func (opts LoadOptions) skipped() map[Scope]bool {
	return map[Scope]bool{
		ScopeSystem:  opts.IgnoreSystemConfig,
		ScopeUser:    opts.IgnoreUserConfig,
		ScopeProject: opts.IgnoreProjectConfig,
	}
}

// Load builds the effective configuration. Each source overrides the ones
// before it: defaults, system file, user file, project file, the
// --config file, JIRAI_* environment variables and finally opts.CLIConfig.
// Every file is validated on its own before merging so errors name the
// offending file.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	layers := []*config.Config{config.NewConfig()}
	skip := opts.skipped()

	for _, layer := range paths.Layers() {
		if skip[layer.Scope] {
			continue
		}

		fileCfg, err := LoadFile(layer.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.Scope, err)
		}
		if check := ValidateWithFile(fileCfg, layer.Path); !check.Valid() {
			return nil, &check.Errors[0]
		}

		layers = append(layers, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.Path)
	}
	cfg := MergeAll(layers...)

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}
	cfg = merge(cfg, opts.CLIConfig)

	check := Validate(cfg)
	if !check.Valid() {
		return nil, &check.Errors[0]
	}
	for _, warning := range check.Warnings {
		result.Warnings = append(result.Warnings, warning.Message)
	}

	result.Config = cfg
	return result, nil
}

// decoders picks a config decoder by file extension. Unknown extensions
// are read as YAML.
//
//nolint:gochecknoglobals // Read-only lookup table.
var decoders = map[string]func([]byte) (*config.Config, error){
	".toml": config.FromTOML,
	".yaml": config.FromYAML,
	".yml":  config.FromYAML,
}

// LoadFile decodes one configuration file.
func LoadFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	decode, ok := decoders[filepath.Ext(path)]
	if !ok {
		decode = config.FromYAML
	}
	return decode(content)
}

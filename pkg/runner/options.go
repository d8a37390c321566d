// Package runner compiles many Jirai files concurrently.
//
// Each file goes through the single-threaded compiler on its own; workers
// only parallelise across independent files.
package runner

import (
	"github.com/yaklabco/jirai/pkg/compiler"
	"github.com/yaklabco/jirai/pkg/config"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to compile.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) treated
	// as Jirai sources. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// "**" matches any number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// OutputDir receives generated files, mirroring the layout relative to
	// WorkingDir. Empty writes each file beside its source.
	OutputDir string

	// Compile is passed to compiler.Compile for every file.
	Compile compiler.Options

	// NoWrite keeps generated HTML in the outcome instead of writing it.
	NoWrite bool

	// Force rewrites outputs even when their content is unchanged.
	Force bool
}

// DefaultExtensions returns the default set of Jirai file extensions.
func DefaultExtensions() []string {
	return []string{config.DefaultExtension}
}

// OptionsFromConfig builds run options for paths from resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}

	opts.Extensions = cfg.Extensions
	opts.ExcludeGlobs = cfg.Ignore
	opts.Jobs = cfg.Jobs
	opts.OutputDir = cfg.OutputDir
	opts.Compile = compiler.OptionsFromConfig(cfg)
	opts.NoWrite = cfg.Stdout
	opts.Force = cfg.Force

	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

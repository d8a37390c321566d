package configloader

import "github.com/yaklabco/jirai/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings and ints: override wins when non-zero
//   - Booleans: override wins when true, so a later layer cannot switch
//     an option back off (environment variables can)
//   - Slices: override replaces base entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.SourceKind != "" {
		result.SourceKind = override.SourceKind
	}
	if override.Title != "" {
		result.Title = override.Title
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Minify {
		result.Minify = true
	}
	if override.AltEnforcing {
		result.AltEnforcing = true
	}
	if override.EscapeHTML {
		result.EscapeHTML = true
	}
	if override.AnnotateCode {
		result.AnnotateCode = true
	}
	if override.Stdout {
		result.Stdout = true
	}
	if override.Force {
		result.Force = true
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}

package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/config"
)

// ValidationError describes one invalid or suspicious setting.
type ValidationError struct {
	// Field is the config key, with an index for list entries
	// (e.g. "extensions[1]").
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.FilePath != "" {
		msg = e.FilePath + ": " + msg
	}
	return msg
}

// ValidationResult collects findings. Errors block loading; warnings do not.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: message})
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// checks run in order against every validated config.
//
//nolint:gochecknoglobals // Read-only lookup table.
var checks = []func(*config.Config, *ValidationResult){
	checkSourceKind,
	checkFormat,
	checkJobs,
	checkExtensions,
	checkIgnore,
	checkUnusedSettings,
}

// Validate checks cfg. A nil config is valid.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	for _, check := range checks {
		check(cfg, result)
	}
	return result
}

// ValidateWithFile validates cfg and tags each finding with filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

func checkSourceKind(cfg *config.Config, r *ValidationResult) {
	if _, ok := ast.ParseSourceKind(cfg.SourceKind); !ok {
		r.fail("source_kind", cfg.SourceKind,
			"invalid source kind %q; must be one of: fragment, document", cfg.SourceKind)
	}
}

func checkFormat(cfg *config.Config, r *ValidationResult) {
	if cfg.Format != "" && !knownFormats[cfg.Format] {
		r.fail("format", cfg.Format,
			"invalid format %q; must be one of: text, json, summary", cfg.Format)
	}
}

func checkJobs(cfg *config.Config, r *ValidationResult) {
	if cfg.Jobs < 0 {
		r.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
}

func checkExtensions(cfg *config.Config, r *ValidationResult) {
	for i, ext := range cfg.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			r.fail(fmt.Sprintf("extensions[%d]", i), ext,
				"invalid extension %q; must start with a dot", ext)
		}
	}
}

func checkIgnore(cfg *config.Config, r *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// Match only errors on a malformed pattern.
		if _, err := filepath.Match(pattern, ""); err != nil {
			r.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// checkUnusedSettings warns about values that have no effect.
func checkUnusedSettings(cfg *config.Config, r *ValidationResult) {
	if cfg.Title != "" && cfg.SourceKind != config.SourceKindDocument {
		r.warn("title", cfg.Title, "title only applies when source_kind is document")
	}
	if cfg.Stdout && cfg.OutputDir != "" {
		r.warn("output_dir", cfg.OutputDir, "output_dir is ignored when printing to stdout")
	}
}

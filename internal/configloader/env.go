package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/jirai/pkg/config"
)

const envVarPrefix = "JIRAI_"

// envBinding ties one JIRAI_* variable to a config field.
type envBinding struct {
	suffix      string
	field       string
	description string
	set         func(cfg *config.Config, raw string) error
}

func boolEnv(field func(*config.Config) *bool) func(*config.Config, string) error {
	return func(cfg *config.Config, raw string) error {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%q is not a boolean (expected true/false/1/0)", raw)
		}
		*field(cfg) = value
		return nil
	}
}

func stringEnv(field func(*config.Config) *string) func(*config.Config, string) error {
	return func(cfg *config.Config, raw string) error {
		*field(cfg) = raw
		return nil
	}
}

func listEnv(field func(*config.Config) *[]string) func(*config.Config, string) error {
	return func(cfg *config.Config, raw string) error {
		*field(cfg) = splitList(raw)
		return nil
	}
}

// envBindings lists the supported variables in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = []envBinding{
	{"MINIFY", "minify", "Concatenate generated HTML: true or false",
		boolEnv(func(c *config.Config) *bool { return &c.Minify })},
	{"ALT_ENFORCING", "alt_enforcing", "Require alt text on links and images: true or false",
		boolEnv(func(c *config.Config) *bool { return &c.AltEnforcing })},
	{"ESCAPE_HTML", "escape_html", "Escape user text: true or false",
		boolEnv(func(c *config.Config) *bool { return &c.EscapeHTML })},
	{"ANNOTATE_CODE", "annotate_code", "Add language classes to inline code: true or false",
		boolEnv(func(c *config.Config) *bool { return &c.AnnotateCode })},
	{"SOURCE_KIND", "source_kind", "Source kind: fragment or document",
		stringEnv(func(c *config.Config) *string { return &c.SourceKind })},
	{"TITLE", "title", "Page title for documents",
		stringEnv(func(c *config.Config) *string { return &c.Title })},
	{"OUTPUT_DIR", "output_dir", "Directory for generated HTML",
		stringEnv(func(c *config.Config) *string { return &c.OutputDir })},
	{"FORMAT", "format", "Report format: text, json or summary",
		func(c *config.Config, raw string) error {
			c.Format = config.OutputFormat(raw)
			return nil
		}},
	{"JOBS", "jobs", "Number of parallel workers (0 = auto)",
		func(c *config.Config, raw string) error {
			jobs, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%q is not an integer", raw)
			}
			c.Jobs = jobs
			return nil
		}},
	{"IGNORE", "ignore", "Comma-separated list of ignore patterns",
		listEnv(func(c *config.Config) *[]string { return &c.Ignore })},
	{"EXTENSIONS", "extensions", "Comma-separated list of source extensions",
		listEnv(func(c *config.Config) *[]string { return &c.Extensions })},
}

// LoadFromEnv applies every non-empty JIRAI_* variable to cfg. Unlike
// config files, a variable can switch a boolean off.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, binding := range envBindings {
		name := envVarPrefix + binding.suffix
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if err := binding.set(cfg, raw); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var items []string
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// GetEnvVarName returns the variable that sets field, or "".
func GetEnvVarName(field string) string {
	for _, binding := range envBindings {
		if binding.field == field {
			return envVarPrefix + binding.suffix
		}
	}
	return ""
}

// ListEnvVars maps each supported variable to its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envBindings))
	for _, binding := range envBindings {
		vars[envVarPrefix+binding.suffix] = binding.description
	}
	return vars
}

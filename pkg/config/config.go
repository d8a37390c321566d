// Package config defines the configuration types for jirai.
// These types are plain data; discovery and merging live in the loader.
package config

// OutputFormat specifies how compile results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Source kinds accepted by the source_kind setting.
const (
	SourceKindFragment = "fragment"
	SourceKindDocument = "document"
)

// DefaultExtension is the file extension of Jirai sources.
const DefaultExtension = ".jirai"

// Config is the root configuration structure for jirai.
type Config struct {
	// Minify concatenates generated HTML without separating newlines.
	Minify bool `yaml:"minify" toml:"minify"`

	// AltEnforcing rejects links and images that have no alt text.
	AltEnforcing bool `yaml:"alt_enforcing" toml:"alt_enforcing"`

	// EscapeHTML escapes user text in the generated markup.
	EscapeHTML bool `yaml:"escape_html" toml:"escape_html"`

	// AnnotateCode adds language classes to inline code.
	AnnotateCode bool `yaml:"annotate_code" toml:"annotate_code"`

	// SourceKind is "fragment" or "document".
	SourceKind string `yaml:"source_kind,omitempty" toml:"source_kind,omitempty"`

	// Title overrides the page title of documents.
	Title string `yaml:"title,omitempty" toml:"title,omitempty"`

	// Extensions lists the file extensions treated as Jirai sources.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// OutputDir receives generated HTML. Empty writes beside each source.
	OutputDir string `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the report format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs is the number of parallel workers. 0 means one per CPU.
	Jobs int `yaml:"-" toml:"-"`

	// Stdout prints generated HTML instead of writing files.
	Stdout bool `yaml:"-" toml:"-"`

	// Force overwrites outputs even when their content is unchanged.
	Force bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		SourceKind: SourceKindFragment,
		Extensions: []string{DefaultExtension},
		Format:     FormatText,
	}
}

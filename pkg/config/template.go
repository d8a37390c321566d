package config

import "fmt"

// Template formats accepted by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

const yamlTemplate = `# jirai configuration
# See: https://github.com/yaklabco/jirai

# Concatenate generated HTML without newlines between elements
minify: false

# Reject links and images written with empty alt brackets
alt_enforcing: false

# Escape <, >, & and quotes in user text
escape_html: false

# Add a language-* class to inline code when the language is recognised
annotate_code: false

# "fragment" for bare markup, "document" for (^-^) delimited pages
source_kind: fragment

# Page title for documents (defaults to the first heading)
# title: ""

# File extensions compiled when a directory is given
extensions:
  - .jirai

# File patterns to ignore (glob patterns, ** supported)
# ignore:
#   - "drafts/**"

# Directory for generated HTML (defaults to beside each source)
# output_dir: public
`

const tomlTemplate = `# jirai configuration
# See: https://github.com/yaklabco/jirai

# Concatenate generated HTML without newlines between elements
minify = false

# Reject links and images written with empty alt brackets
alt_enforcing = false

# Escape <, >, & and quotes in user text
escape_html = false

# Add a language-* class to inline code when the language is recognised
annotate_code = false

# "fragment" for bare markup, "document" for (^-^) delimited pages
source_kind = "fragment"

# Page title for documents (defaults to the first heading)
# title = ""

# File extensions compiled when a directory is given
extensions = [".jirai"]

# File patterns to ignore (glob patterns, ** supported)
# ignore = ["drafts/**"]

# Directory for generated HTML (defaults to beside each source)
# output_dir = "public"
`

// GenerateTemplate returns a commented configuration file in the given
// format.
func GenerateTemplate(format string) ([]byte, error) {
	switch format {
	case "", TemplateYAML:
		return []byte(yamlTemplate), nil
	case TemplateTOML:
		return []byte(tomlTemplate), nil
	default:
		return nil, fmt.Errorf("unknown template format %q (valid: yaml, toml)", format)
	}
}

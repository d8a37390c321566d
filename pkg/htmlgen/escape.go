package htmlgen

import (
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/jirai/pkg/langdetect"
)

// text prepares user text for element content.
func (g *Generator) text(value string) string {
	if !g.opts.Escape {
		return value
	}
	return string(util.EscapeHTML([]byte(value)))
}

// attr prepares user text for a quoted attribute value.
func (g *Generator) attr(value string) string {
	return g.text(value)
}

// url prepares a link or image target. Escaping percent-encodes unsafe
// bytes before the HTML escape so the attribute stays well formed.
func (g *Generator) url(value string) string {
	if !g.opts.Escape {
		return value
	}
	return string(util.EscapeHTML(util.URLEscape([]byte(value), false)))
}

// codeClass returns the class attribute for an inline code snippet, or
// "" when no language is recognised.
func codeClass(code string) string {
	lang := langdetect.Detect([]byte(code))
	if lang == langdetect.Unknown {
		return ""
	}
	return "language-" + lang
}

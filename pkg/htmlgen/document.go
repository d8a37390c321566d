package htmlgen

import (
	"strings"

	"github.com/yaklabco/jirai/pkg/ast"
)

const defaultLang = "en"

// wrapDocument embeds body in an HTML5 page.
func (g *Generator) wrapDocument(body string) string {
	lang := g.opts.Lang
	if lang == "" {
		lang = defaultLang
	}

	parts := []string{
		"<!DOCTYPE html>",
		`<html lang="` + g.attr(lang) + `">`,
		"<head>",
		`<meta charset="utf-8"/>`,
	}
	if title := g.title(); title != "" {
		parts = append(parts, "<title>"+g.text(title)+"</title>")
	}
	parts = append(parts, "</head>", "<body>", body, "</body>", "</html>")

	return g.join(parts)
}

// title returns the configured title or the first heading's text.
func (g *Generator) title() string {
	if g.opts.Title != "" {
		return g.opts.Title
	}
	heading := ast.FirstHeading(g.statements)
	if heading == nil {
		return ""
	}
	return strings.TrimSpace(ast.PlainText(heading.Inline))
}

// Package htmlgen renders a Jirai syntax tree as HTML.
package htmlgen

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

// Options controls code generation.
type Options struct {
	// Minify concatenates sibling fragments. When false, siblings are
	// joined with a newline at every level.
	Minify bool

	// AltEnforcing rejects links and images without alt text.
	AltEnforcing bool

	// Escape HTML-escapes text and attribute values. When false, user text
	// is emitted verbatim.
	Escape bool

	// AnnotateCode adds a "language-*" class to inline code whose language
	// can be detected.
	AnnotateCode bool

	// Document wraps the output in a complete HTML page.
	Document bool

	// Title is the page title in Document mode. Defaults to the text of
	// the first heading.
	Title string

	// Lang is the page language in Document mode. Defaults to "en".
	Lang string
}

// Generator walks statements in order and emits HTML.
// A Generator is single use and not safe for concurrent use.
type Generator struct {
	statements []ast.Statement
	cursor     int
	opts       Options
}

// New creates a generator for stmts. It fails with diag.KindEmptyAST if
// there is nothing to render.
func New(stmts []ast.Statement, opts Options) (*Generator, error) {
	if len(stmts) == 0 {
		return nil, diag.New(diag.KindEmptyAST, "the AST cannot be empty")
	}
	return &Generator{statements: stmts, opts: opts}, nil
}

func (g *Generator) advance() {
	g.cursor++
}

func (g *Generator) isDone() bool {
	return g.cursor >= len(g.statements)
}

// Generate renders every statement and returns the complete output.
// Nothing is returned on error.
func (g *Generator) Generate() (string, error) {
	blocks := make([]string, 0, len(g.statements))
	for !g.isDone() {
		block, err := g.generateStatement(g.statements[g.cursor])
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
		g.advance()
	}

	body := g.join(blocks)
	if g.opts.Document {
		return g.wrapDocument(body), nil
	}
	return body, nil
}

// generateStatement renders one block statement.
func (g *Generator) generateStatement(stmt ast.Statement) (string, error) {
	inner, err := g.generateInlines(stmt.Contents())
	if err != nil {
		return "", err
	}

	switch block := stmt.(type) {
	case *ast.Heading:
		return fmt.Sprintf("<h%d>%s</h%d>", block.Level, inner, block.Level), nil
	case *ast.Paragraph:
		return "<p>" + inner + "</p>", nil
	case *ast.UnorderedList:
		return "<ul>" + inner + "</ul>", nil
	default:
		return "", fmt.Errorf("unknown statement type %T", stmt)
	}
}

// generateInlines renders a sibling sequence and joins it.
func (g *Generator) generateInlines(nodes []ast.InlineStatement) (string, error) {
	fragments := make([]string, 0, len(nodes))
	for _, node := range nodes {
		fragment, err := g.generateInline(node)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, fragment)
	}
	return g.join(fragments), nil
}

// generateInline renders one inline node, recursing into containers.
func (g *Generator) generateInline(node ast.InlineStatement) (string, error) {
	switch inline := node.(type) {
	case *ast.Text:
		return g.text(inline.Value), nil
	case *ast.Code:
		return g.generateCode(inline), nil
	case *ast.BlockQuote:
		return "<blockquote>" + g.text(inline.Value) + "</blockquote>", nil
	case *ast.Link:
		return g.generateLink(inline)
	case *ast.Image:
		return g.generateImage(inline)
	case *ast.BoldText:
		return g.wrap("b", inline.Children)
	case *ast.ItalicText:
		return g.wrap("i", inline.Children)
	case *ast.ListItem:
		return g.wrap("li", inline.Children)
	default:
		return "", fmt.Errorf("unknown inline statement type %T", node)
	}
}

func (g *Generator) wrap(tag string, children []ast.InlineStatement) (string, error) {
	inner, err := g.generateInlines(children)
	if err != nil {
		return "", err
	}
	return "<" + tag + ">" + inner + "</" + tag + ">", nil
}

func (g *Generator) generateCode(code *ast.Code) string {
	if g.opts.AnnotateCode {
		if class := codeClass(code.Value); class != "" {
			return `<code class="` + class + `">` + g.text(code.Value) + "</code>"
		}
	}
	return "<code>" + g.text(code.Value) + "</code>"
}

func (g *Generator) generateLink(link *ast.Link) (string, error) {
	if link.Alt == nil {
		if g.opts.AltEnforcing {
			return "", diag.New(diag.KindMissingAltText, "no \"alt\" text supplied to link %q", link.URL)
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, g.url(link.URL), g.text(link.LinkText)), nil
	}
	return fmt.Sprintf(`<a alt="%s" href="%s">%s</a>`,
		g.attr(*link.Alt), g.url(link.URL), g.text(link.LinkText)), nil
}

func (g *Generator) generateImage(image *ast.Image) (string, error) {
	if image.Alt == nil {
		if g.opts.AltEnforcing {
			return "", diag.New(diag.KindMissingAltText, "no \"alt\" text supplied to image %q", image.URL)
		}
		return fmt.Sprintf(`<img src="%s"/>`, g.url(image.URL)), nil
	}
	return fmt.Sprintf(`<img alt="%s" src="%s"/>`, g.attr(*image.Alt), g.url(image.URL)), nil
}

// join concatenates fragments according to the minify policy.
func (g *Generator) join(fragments []string) string {
	if g.opts.Minify {
		return strings.Join(fragments, "")
	}
	return strings.Join(fragments, "\n")
}

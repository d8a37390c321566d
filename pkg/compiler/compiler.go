// Package compiler runs the full Jirai pipeline: lexing, parsing and HTML
// generation. Errors from any stage are returned unchanged as *diag.Error.
package compiler

import (
	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/config"
	"github.com/yaklabco/jirai/pkg/htmlgen"
	"github.com/yaklabco/jirai/pkg/lexer"
	"github.com/yaklabco/jirai/pkg/parser"
)

// Options controls a compilation.
type Options struct {
	// Minify concatenates sibling HTML fragments instead of joining them
	// with newlines.
	Minify bool

	// AltEnforcing rejects links and images without alt text.
	AltEnforcing bool

	// Escape HTML-escapes user text and attribute values.
	Escape bool

	// AnnotateCode marks inline code with a detected language class.
	AnnotateCode bool

	// Kind selects fragment or full document compilation.
	Kind ast.SourceKind

	// Title overrides the page title for documents.
	Title string
}

// CompileToHTML compiles a Jirai fragment with the two core switches.
func CompileToHTML(source string, minify, altEnforcing bool) (string, error) {
	return Compile(source, Options{Minify: minify, AltEnforcing: altEnforcing})
}

// Compile compiles source according to opts.
func Compile(source string, opts Options) (string, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return "", err
	}

	p, err := parser.New(tokens, parser.WithSourceKind(opts.Kind))
	if err != nil {
		return "", err
	}

	statements, err := p.Parse()
	if err != nil {
		return "", err
	}

	gen, err := htmlgen.New(statements, htmlgen.Options{
		Minify:       opts.Minify,
		AltEnforcing: opts.AltEnforcing,
		Escape:       opts.Escape,
		AnnotateCode: opts.AnnotateCode,
		Document:     opts.Kind == ast.SourceDocument,
		Title:        opts.Title,
	})
	if err != nil {
		return "", err
	}

	return gen.Generate()
}

// OptionsFromConfig maps resolved configuration onto compile options.
// An unrecognised source kind falls back to a fragment; configuration
// validation reports it separately.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}

	kind, _ := ast.ParseSourceKind(cfg.SourceKind)

	return Options{
		Minify:       cfg.Minify,
		AltEnforcing: cfg.AltEnforcing,
		Escape:       cfg.EscapeHTML,
		AnnotateCode: cfg.AnnotateCode,
		Kind:         kind,
		Title:        cfg.Title,
	}
}

package compiler_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/compiler"
	"github.com/yaklabco/jirai/pkg/config"
	"github.com/yaklabco/jirai/pkg/diag"
)

func TestCompileToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		source       string
		minify       bool
		altEnforcing bool
		expected     string
	}{
		{
			name:     "heading",
			source:   "<3 Hi\n",
			expected: "<h1> Hi</h1>",
		},
		{
			name:     "list minified",
			source:   "~ a\n~ b\n\n",
			minify:   true,
			expected: "<ul><li> a</li><li> b</li></ul>",
		},
		{
			name:     "list joined with newlines",
			source:   "~ a\n~ b\n",
			expected: "<ul><li> a</li>\n<li> b</li></ul>",
		},
		{
			name:     "paragraph with emphasis",
			source:   "plain *bold* $it$",
			minify:   true,
			expected: "<p>plain <b>bold</b> <i>it</i></p>",
		},
		{
			name:     "heading then paragraph",
			source:   "<3<3 Title\nbody\n",
			expected: "<h2> Title</h2>\n<p>body</p>",
		},
		{
			name:     "image without alt when not enforcing",
			source:   "{@[][x]}",
			expected: "<p><img src=\"x\"/></p>",
		},
		{
			name:         "link with alt when enforcing",
			source:       "{#[home][Home][/]}",
			altEnforcing: true,
			expected:     "<p><a alt=\"home\" href=\"/\">Home</a></p>",
		},
		{
			name:     "code and quote",
			source:   "<x> >(q)<",
			minify:   true,
			expected: "<p><code>x</code> <blockquote>q</blockquote></p>",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := compiler.CompileToHTML(testCase.source, testCase.minify, testCase.altEnforcing)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestCompileToHTML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		source       string
		altEnforcing bool
		want         *diag.Error
	}{
		{"empty source", "", false, diag.ErrEmptySource},
		{"only blank lines", "\n\n", false, diag.ErrEmptyAST},
		{"illegal character", "a - b", false, diag.ErrIllegalCharacter},
		{"unterminated bold", "*bold", false, diag.ErrUnexpectedEndOfStream},
		{"missing alt", "{@[][x]}", true, diag.ErrMissingAltText},
		{"bad link marker", "{x}", false, diag.ErrExpectedLinkOrImageMarker},
		{"limiter in fragment", "(^-^)", false, diag.ErrExpectedToken},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := compiler.CompileToHTML(testCase.source, false, testCase.altEnforcing)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, testCase.want)

			var diagErr *diag.Error
			assert.True(t, errors.As(err, &diagErr))
		})
	}
}

func TestCompile_Document(t *testing.T) {
	t.Parallel()

	source := "(^-^)\n<3 Welcome\nSee {#[docs][the docs][/docs]}\n(^-^)\n"

	got, err := compiler.Compile(source, compiler.Options{Kind: ast.SourceDocument})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Welcome</title>")

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)

	heading := findElement(doc, atom.H1)
	require.NotNil(t, heading)
	assert.Equal(t, " Welcome", textContent(heading))

	anchor := findElement(doc, atom.A)
	require.NotNil(t, anchor)
	assert.Equal(t, "/docs", attribute(anchor, "href"))
	assert.Equal(t, "docs", attribute(anchor, "alt"))
	assert.Equal(t, "the docs", textContent(anchor))
}

func TestCompile_DocumentRequiresLimiters(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile("<3 Welcome\n", compiler.Options{Kind: ast.SourceDocument})
	require.ErrorIs(t, err, diag.ErrExpectedToken)

	_, err = compiler.Compile("(^-^)\n<3 Welcome\n", compiler.Options{Kind: ast.SourceDocument})
	require.ErrorIs(t, err, diag.ErrExpectedToken)

	_, err = compiler.Compile("(^-^)\n", compiler.Options{Kind: ast.SourceDocument})
	require.ErrorIs(t, err, diag.ErrUnexpectedEndOfStream)
}

func TestCompile_TitleOverride(t *testing.T) {
	t.Parallel()

	got, err := compiler.Compile("(^-^)<3 Heading(^-^)", compiler.Options{
		Kind:   ast.SourceDocument,
		Title:  "Custom",
		Minify: true,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "<title>Custom</title>")
	assert.Contains(t, got, "<body><h1> Heading</h1></body>")
}

func TestCompile_Escape(t *testing.T) {
	t.Parallel()

	got, err := compiler.Compile("Tom & Jerry", compiler.Options{Escape: true})
	require.NoError(t, err)
	assert.Equal(t, "<p>Tom &amp; Jerry</p>", got)

	got, err = compiler.Compile("Tom & Jerry", compiler.Options{})
	require.NoError(t, err)
	assert.Equal(t, "<p>Tom & Jerry</p>", got)
}

func TestCompile_ParsesAsHTML(t *testing.T) {
	t.Parallel()

	source := "<3 Shopping\n~ *eggs*\n~ $milk$\n{@[a cat][cat.png]}\n"

	got, err := compiler.CompileToHTML(source, true, true)
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)

	list := findElement(doc, atom.Ul)
	require.NotNil(t, list)

	var items []*html.Node
	for child := list.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			items = append(items, child)
		}
	}
	require.Len(t, items, 2)
	assert.Equal(t, atom.Li, items[0].DataAtom)
	assert.NotNil(t, findElement(items[0], atom.B))
	assert.NotNil(t, findElement(items[1], atom.I))

	img := findElement(doc, atom.Img)
	require.NotNil(t, img)
	assert.Equal(t, "cat.png", attribute(img, "src"))
	assert.Equal(t, "a cat", attribute(img, "alt"))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Minify = true
	cfg.AltEnforcing = true
	cfg.EscapeHTML = true
	cfg.SourceKind = "document"
	cfg.Title = "Site"

	opts := compiler.OptionsFromConfig(cfg)
	assert.Equal(t, compiler.Options{
		Minify:       true,
		AltEnforcing: true,
		Escape:       true,
		Kind:         ast.SourceDocument,
		Title:        "Site",
	}, opts)

	assert.Equal(t, compiler.Options{}, compiler.OptionsFromConfig(nil))
}

func findElement(node *html.Node, tag atom.Atom) *html.Node {
	if node.Type == html.ElementNode && node.DataAtom == tag {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(node *html.Node) string {
	var builder strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(node)
	return builder.String()
}

func attribute(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

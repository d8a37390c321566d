package lexer_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
	"github.com/yaklabco/jirai/pkg/lexer"
)

func pos(line, column int) ast.Position {
	return ast.Position{Line: line, Column: column}
}

func kinds(tokens []ast.Token) []ast.TokenKind {
	out := make([]ast.TokenKind, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.Kind)
	}
	return out
}

func TestTokenize_Heading(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize("<3 Hi\n")
	require.NoError(t, err)

	assert.Equal(t, []ast.Token{
		{Kind: ast.TokHeadingMarker, Start: pos(0, 0), End: pos(0, 2)},
		{Kind: ast.TokUserString, Value: " Hi", Start: pos(0, 2), End: pos(0, 5)},
		{Kind: ast.TokNewLine, Start: pos(0, 5), End: pos(0, 6)},
	}, tokens)
}

func TestTokenize_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected []ast.TokenKind
	}{
		{
			name:     "stacked heading markers",
			source:   "<3<3x",
			expected: []ast.TokenKind{ast.TokHeadingMarker, ast.TokHeadingMarker, ast.TokUserString},
		},
		{
			name:     "angle without three is code open",
			source:   "<4>",
			expected: []ast.TokenKind{ast.TokOpenAngle, ast.TokUserString, ast.TokCloseAngle},
		},
		{
			name:   "link",
			source: "{#[a][b][c]}",
			expected: []ast.TokenKind{
				ast.TokOpenCurly, ast.TokLinkMarker,
				ast.TokOpenSquare, ast.TokUserString, ast.TokCloseSquare,
				ast.TokOpenSquare, ast.TokUserString, ast.TokCloseSquare,
				ast.TokOpenSquare, ast.TokUserString, ast.TokCloseSquare,
				ast.TokCloseCurly,
			},
		},
		{
			name:     "emphasis and list",
			source:   "~*$",
			expected: []ast.TokenKind{ast.TokListMarker, ast.TokBoldText, ast.TokItalicText},
		},
		{
			name:     "document limiter",
			source:   "(^-^)",
			expected: []ast.TokenKind{ast.TokDocumentLimiter},
		},
		{
			name:     "brackets around text",
			source:   ">(q)<",
			expected: []ast.TokenKind{ast.TokCloseAngle, ast.TokOpenBracket, ast.TokUserString, ast.TokCloseBracket, ast.TokOpenAngle},
		},
		{
			name:     "image marker",
			source:   "{@",
			expected: []ast.TokenKind{ast.TokOpenCurly, ast.TokImageMarker},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := lexer.Tokenize(testCase.source)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, kinds(tokens))
		})
	}
}

func TestTokenize_CarriageReturnNewLine(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize("a\r\nb")
	require.NoError(t, err)

	assert.Equal(t, []ast.TokenKind{
		ast.TokUserString, ast.TokNewLine, ast.TokNewLine, ast.TokUserString,
	}, kinds(tokens))
	assert.Equal(t, pos(2, 0), tokens[3].Start)
}

func TestTokenize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   *diag.Error
		at     ast.Position
	}{
		{"stray caret", "a^", diag.ErrIllegalCharacter, pos(0, 1)},
		{"stray dash on second line", "ok\n-", diag.ErrIllegalCharacter, pos(1, 0)},
		{"incomplete limiter", "(^-)", diag.ErrIllegalCharacter, pos(0, 1)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := lexer.Tokenize(testCase.source)
			require.ErrorIs(t, err, testCase.want)
			assert.Nil(t, tokens)

			at, ok := diag.Position(err)
			require.True(t, ok)
			assert.Equal(t, testCase.at, at)
		})
	}

	_, err := lexer.Tokenize("")
	require.ErrorIs(t, err, diag.ErrEmptySource)
}

func TestTokenize_ColumnsCountRunes(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize("héllo*")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "héllo", tokens[0].Value)
	assert.Equal(t, pos(0, 5), tokens[0].End)
	assert.Equal(t, pos(0, 5), tokens[1].Start)
}

// Every rune belongs to exactly one token and positions never move back.
func TestTokenize_TotalAndMonotonic(t *testing.T) {
	t.Parallel()

	sources := []string{
		"<3 Hi\n",
		"~ a\n~ b\n\n",
		"(^-^)\n<3<3 Title\n*bold $and$ italic*\n(^-^)",
		"{#[alt][text][https://example.com]} {@[][img.png]}",
		"<code> >(quote)< ünïcödé\r\n",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			t.Parallel()

			tokens, err := lexer.Tokenize(source)
			require.NoError(t, err)

			covered := 0
			for i, token := range tokens {
				require.True(t, token.Span().IsSingleLine())
				covered += token.Span().Width()
				if i > 0 {
					assert.False(t, token.Start.Before(tokens[i-1].End),
						"token %d starts before the previous one ends", i)
				}
				if token.Kind == ast.TokUserString {
					assert.NotEmpty(t, token.Value)
				} else {
					assert.Empty(t, token.Value)
				}
			}
			assert.Equal(t, utf8.RuneCountInString(source), covered)
		})
	}
}

func TestIsText(t *testing.T) {
	t.Parallel()

	for _, r := range "<>*$()[]{}^-~#@\n\r" {
		assert.False(t, lexer.IsText(r), "%q", r)
	}
	for _, r := range "aZ9 .,!?:/=&é" {
		assert.True(t, lexer.IsText(r), "%q", r)
	}
}

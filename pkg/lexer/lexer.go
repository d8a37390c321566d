// Package lexer turns Jirai source into a flat stream of position-tagged tokens.
package lexer

import (
	"strings"

	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

// Multi-rune markers, matched before the text and single-rune rules.
const (
	headingMarker   = "<3"
	documentLimiter = "(^-^)"
)

// reserved holds every rune that is not part of a text run.
const reserved = "<>*$()[]{}^-~#@\n\r"

//nolint:gochecknoglobals // Read-only lookup table.
var singleRuneKinds = map[rune]ast.TokenKind{
	'~': ast.TokListMarker,
	'>': ast.TokCloseAngle,
	'<': ast.TokOpenAngle,
	'[': ast.TokOpenSquare,
	']': ast.TokCloseSquare,
	'{': ast.TokOpenCurly,
	'}': ast.TokCloseCurly,
	'$': ast.TokItalicText,
	'*': ast.TokBoldText,
	'@': ast.TokImageMarker,
	'#': ast.TokLinkMarker,
	'(': ast.TokOpenBracket,
	')': ast.TokCloseBracket,
}

// IsText reports whether r may appear inside a UserString run.
func IsText(r rune) bool {
	return !strings.ContainsRune(reserved, r)
}

// lexer holds the scanning state for one call to Tokenize.
type lexer struct {
	src    []rune
	tokens []ast.Token
	pos    int
	line   int
	column int
}

// Tokenize scans source left to right and returns its tokens.
// Every rune is consumed by exactly one token. It fails with
// diag.KindEmptySource on empty input and diag.KindIllegalCharacter on a
// rune that matches no rule.
func Tokenize(source string) ([]ast.Token, error) {
	if source == "" {
		return nil, diag.New(diag.KindEmptySource, "source cannot be empty")
	}

	lex := &lexer{src: []rune(source)}
	if err := lex.run(); err != nil {
		return nil, err
	}

	return lex.tokens, nil
}

// run is the main scanning loop.
func (l *lexer) run() error {
	for l.pos < len(l.src) {
		switch {
		case l.hasPrefix(headingMarker):
			l.emit(ast.TokHeadingMarker, "", len(headingMarker))
		case l.hasPrefix(documentLimiter):
			l.emit(ast.TokDocumentLimiter, "", len(documentLimiter))
		case IsText(l.src[l.pos]):
			l.scanText()
		default:
			if err := l.scanSingle(); err != nil {
				return err
			}
		}
	}
	return nil
}

// hasPrefix reports whether the remaining input starts with the ASCII marker.
func (l *lexer) hasPrefix(marker string) bool {
	if l.pos+len(marker) > len(l.src) {
		return false
	}
	for i := range len(marker) {
		if l.src[l.pos+i] != rune(marker[i]) {
			return false
		}
	}
	return true
}

// scanText consumes a maximal run of text runes as one UserString.
func (l *lexer) scanText() {
	end := l.pos
	for end < len(l.src) && IsText(l.src[end]) {
		end++
	}
	l.emit(ast.TokUserString, string(l.src[l.pos:end]), end-l.pos)
}

// scanSingle consumes one reserved rune.
//
// '\r' and '\n' each produce their own NewLine, so "\r\n" yields two tokens.
func (l *lexer) scanSingle() error {
	current := l.src[l.pos]

	if current == '\n' || current == '\r' {
		l.emit(ast.TokNewLine, "", 1)
		l.line++
		l.column = 0
		return nil
	}

	kind, ok := singleRuneKinds[current]
	if !ok {
		return diag.At(diag.KindIllegalCharacter,
			ast.Position{Line: l.line, Column: l.column},
			"unexpected character %q", current)
	}

	l.emit(kind, "", 1)
	return nil
}

// emit appends a token covering width runes from the current position
// and advances past them.
func (l *lexer) emit(kind ast.TokenKind, value string, width int) {
	start := ast.Position{Line: l.line, Column: l.column}
	l.pos += width
	l.column += width
	l.tokens = append(l.tokens, ast.Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   ast.Position{Line: l.line, Column: l.column},
	})
}

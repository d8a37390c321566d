// Package parser builds a Jirai syntax tree from a token stream.
//
// The parser is single pass and never backtracks: one cursor moves forward
// through the tokens with one token of lookahead. The first structural
// mismatch aborts the whole parse.
package parser

import (
	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

// Option configures a Parser.
type Option func(*Parser)

// WithSourceKind sets what the token stream represents.
// SourceDocument requires the content to be enclosed in "(^-^)" limiters.
func WithSourceKind(kind ast.SourceKind) Option {
	return func(p *Parser) {
		p.kind = kind
	}
}

// Parser consumes a token stream and produces block statements.
// A Parser is single use and not safe for concurrent use.
type Parser struct {
	tokens []ast.Token
	cursor int
	kind   ast.SourceKind
}

// New creates a parser over tokens. It fails with diag.KindEmptyTokenStream
// if tokens is empty.
func New(tokens []ast.Token, opts ...Option) (*Parser, error) {
	if len(tokens) == 0 {
		return nil, diag.New(diag.KindEmptyTokenStream, "token stream cannot be empty")
	}

	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Parse consumes the whole stream and returns the statements in source order.
func (p *Parser) Parse() ([]ast.Statement, error) {
	if p.kind == ast.SourceDocument {
		if err := p.trimDocumentLimiters(); err != nil {
			return nil, err
		}
	}

	var statements []ast.Statement
	for !p.isDone() {
		current := p.tokens[p.cursor]

		switch current.Kind {
		case ast.TokHeadingMarker:
			heading, err := p.parseHeading()
			if err != nil {
				return nil, err
			}
			statements = append(statements, heading)
		case ast.TokNewLine:
			// Blank line between blocks.
			p.advance()
		default:
			block, err := p.parseBlockElement()
			if err != nil {
				return nil, err
			}
			statements = append(statements, block)
		}
	}

	return statements, nil
}

// trimDocumentLimiters checks that the stream is enclosed in "(^-^)" and
// narrows it to the content between the limiters.
func (p *Parser) trimDocumentLimiters() error {
	first := p.skipNewLines(0)
	if _, err := p.expectAt(first, ast.TokDocumentLimiter); err != nil {
		return err
	}

	last := len(p.tokens) - 1
	for last > first && p.tokens[last].Kind == ast.TokNewLine {
		last--
	}
	if last == first {
		end := p.tokens[len(p.tokens)-1].End
		return diag.At(diag.KindUnexpectedEndOfStream, end,
			"document is missing its closing %q limiter", "(^-^)")
	}
	if _, err := p.expectAt(last, ast.TokDocumentLimiter); err != nil {
		return err
	}

	p.tokens = p.tokens[first+1 : last]
	p.cursor = 0
	return nil
}

func (p *Parser) skipNewLines(idx int) int {
	for idx < len(p.tokens) && p.tokens[idx].Kind == ast.TokNewLine {
		idx++
	}
	return idx
}

// advance moves the cursor one token forward.
func (p *Parser) advance() {
	p.cursor++
}

// isDone reports whether every token has been consumed.
func (p *Parser) isDone() bool {
	return p.cursor >= len(p.tokens)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (ast.Token, error) {
	if p.isDone() {
		return ast.Token{}, p.endOfStream()
	}
	return p.tokens[p.cursor], nil
}

// peekIs reports whether the current token exists and has the given kind.
func (p *Parser) peekIs(kind ast.TokenKind) bool {
	return !p.isDone() && p.tokens[p.cursor].Kind == kind
}

// expect consumes the current token if it has the wanted kind. On mismatch
// the cursor does not move.
func (p *Parser) expect(kind ast.TokenKind) (ast.Token, error) {
	current, err := p.peek()
	if err != nil {
		return ast.Token{}, err
	}
	if current.Kind != kind {
		return ast.Token{}, expectedToken(kind, current)
	}
	p.advance()
	return current, nil
}

// expectAt checks the kind of the token at idx without moving the cursor.
func (p *Parser) expectAt(idx int, kind ast.TokenKind) (ast.Token, error) {
	if idx >= len(p.tokens) {
		return ast.Token{}, p.endOfStream()
	}
	if p.tokens[idx].Kind != kind {
		return ast.Token{}, expectedToken(kind, p.tokens[idx])
	}
	return p.tokens[idx], nil
}

// expectText consumes a UserString and returns its text.
func (p *Parser) expectText() (string, error) {
	token, err := p.expect(ast.TokUserString)
	if err != nil {
		return "", err
	}
	text, ok := token.Text()
	if !ok {
		return "", diag.At(diag.KindMissingValue, token.Start, "text token carries no value")
	}
	return text, nil
}

func (p *Parser) endOfStream() error {
	var end ast.Position
	if len(p.tokens) > 0 {
		end = p.tokens[len(p.tokens)-1].End
	}
	return diag.At(diag.KindUnexpectedEndOfStream, end, "unexpected end of token stream")
}

func expectedToken(wanted ast.TokenKind, found ast.Token) error {
	return diag.At(diag.KindExpectedToken, found.Start,
		"expected token of type %q, found %q", wanted, found.Kind)
}

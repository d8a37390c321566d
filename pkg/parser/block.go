package parser

import (
	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

// parseHeading parses "<3<3 content\n". The number of consecutive
// markers is the level.
func (p *Parser) parseHeading() (ast.Statement, error) {
	level := 0
	for p.peekIs(ast.TokHeadingMarker) {
		level++
		p.advance()
	}
	if level == 0 {
		var at ast.Position
		if !p.isDone() {
			at = p.tokens[p.cursor].Start
		}
		return nil, diag.At(diag.KindExpectedHeadingMarker, at, "no heading marker encountered")
	}

	inline, err := p.parseLine()
	if err != nil {
		return nil, err
	}

	return &ast.Heading{Level: level, Inline: inline}, nil
}

// parseBlockElement routes to list or paragraph parsing.
func (p *Parser) parseBlockElement() (ast.Statement, error) {
	current, err := p.peek()
	if err != nil {
		return nil, err
	}

	if current.Kind == ast.TokListMarker {
		return p.parseUnorderedList()
	}
	return p.parseParagraph()
}

// parseParagraph parses one line of inline content.
func (p *Parser) parseParagraph() (ast.Statement, error) {
	inline, err := p.parseLine()
	if err != nil {
		return nil, err
	}
	return &ast.Paragraph{Inline: inline}, nil
}

// parseUnorderedList parses consecutive lines starting with "~".
// The list ends at a blank line, a line that does not start with "~",
// or the end of the stream.
func (p *Parser) parseUnorderedList() (ast.Statement, error) {
	var items []ast.InlineStatement
	for {
		inline, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		items = append(items, inline...)

		if !p.peekIs(ast.TokListMarker) {
			break
		}
	}
	return &ast.UnorderedList{Inline: items}, nil
}

// parseLine collects inline statements up to a NewLine, which is consumed,
// or the end of the stream.
func (p *Parser) parseLine() ([]ast.InlineStatement, error) {
	var inline []ast.InlineStatement
	for !p.isDone() {
		if p.peekIs(ast.TokNewLine) {
			p.advance()
			break
		}

		stmt, err := p.parseInlineStatement()
		if err != nil {
			return nil, err
		}
		inline = append(inline, stmt)
	}
	return inline, nil
}

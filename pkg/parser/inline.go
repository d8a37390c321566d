package parser

import (
	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

// parseInlineStatement dispatches on the current token.
func (p *Parser) parseInlineStatement() (ast.InlineStatement, error) {
	current, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch current.Kind {
	case ast.TokBoldText:
		return p.parseBoldText()
	case ast.TokListMarker:
		return p.parseListItem()
	case ast.TokOpenAngle:
		return p.parseCode()
	case ast.TokOpenCurly:
		return p.parseLinkOrImage()
	case ast.TokItalicText:
		return p.parseItalicText()
	case ast.TokCloseAngle:
		return p.parseBlockQuote()
	default:
		return p.parseText()
	}
}

// parseBoldText parses "*...*".
func (p *Parser) parseBoldText() (ast.InlineStatement, error) {
	children, err := p.parseDelimited(ast.TokBoldText)
	if err != nil {
		return nil, err
	}
	return &ast.BoldText{Children: children}, nil
}

// parseItalicText parses "$...$".
func (p *Parser) parseItalicText() (ast.InlineStatement, error) {
	children, err := p.parseDelimited(ast.TokItalicText)
	if err != nil {
		return nil, err
	}
	return &ast.ItalicText{Children: children}, nil
}

// parseDelimited consumes an opening marker, inline children until the
// same marker is next, and the closing marker. Running out of tokens
// first surfaces as an end-of-stream error.
func (p *Parser) parseDelimited(marker ast.TokenKind) ([]ast.InlineStatement, error) {
	if _, err := p.expect(marker); err != nil {
		return nil, err
	}

	var children []ast.InlineStatement
	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == marker {
			break
		}

		child, err := p.parseInlineStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if _, err := p.expect(marker); err != nil {
		return nil, err
	}
	return children, nil
}

// parseListItem parses "~" and the rest of the line. The terminating
// NewLine is left for the enclosing block.
func (p *Parser) parseListItem() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokListMarker); err != nil {
		return nil, err
	}

	var children []ast.InlineStatement
	for !p.isDone() && !p.peekIs(ast.TokNewLine) {
		child, err := p.parseInlineStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return &ast.ListItem{Children: children}, nil
}

// parseLinkOrImage parses "{#[alt][text][url]}" or "{@[alt][url]}".
func (p *Parser) parseLinkOrImage() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokOpenCurly); err != nil {
		return nil, err
	}

	marker, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch marker.Kind {
	case ast.TokLinkMarker:
		return p.parseLink()
	case ast.TokImageMarker:
		return p.parseImage()
	default:
		return nil, diag.At(diag.KindExpectedLinkOrImageMarker, marker.Start,
			"expected %q or %q after %q, found %q",
			ast.TokLinkMarker, ast.TokImageMarker, ast.TokOpenCurly, marker.Kind)
	}
}

func (p *Parser) parseLink() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokLinkMarker); err != nil {
		return nil, err
	}
	alt, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	linkText, err := p.parseBracketed()
	if err != nil {
		return nil, err
	}
	url, err := p.parseBracketed()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokCloseCurly); err != nil {
		return nil, err
	}

	return &ast.Link{Alt: alt, URL: url, LinkText: linkText}, nil
}

func (p *Parser) parseImage() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokImageMarker); err != nil {
		return nil, err
	}
	alt, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	url, err := p.parseBracketed()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokCloseCurly); err != nil {
		return nil, err
	}

	return &ast.Image{Alt: alt, URL: url}, nil
}

// parseAlt parses "[alt]" or "[]". Empty brackets yield a nil alt.
func (p *Parser) parseAlt() (*string, error) {
	if _, err := p.expect(ast.TokOpenSquare); err != nil {
		return nil, err
	}
	if p.peekIs(ast.TokCloseSquare) {
		p.advance()
		return nil, nil //nolint:nilnil // Absent alt text is not an error.
	}

	text, err := p.expectText()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokCloseSquare); err != nil {
		return nil, err
	}
	return &text, nil
}

// parseBracketed parses "[text]" where text is required.
func (p *Parser) parseBracketed() (string, error) {
	if _, err := p.expect(ast.TokOpenSquare); err != nil {
		return "", err
	}
	text, err := p.expectText()
	if err != nil {
		return "", err
	}
	if _, err := p.expect(ast.TokCloseSquare); err != nil {
		return "", err
	}
	return text, nil
}

// parseCode parses "<code>".
func (p *Parser) parseCode() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokOpenAngle); err != nil {
		return nil, err
	}
	code, err := p.expectText()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokCloseAngle); err != nil {
		return nil, err
	}
	return &ast.Code{Value: code}, nil
}

// parseBlockQuote parses ">(quote)<". It opens with '>' and closes with '<'.
func (p *Parser) parseBlockQuote() (ast.InlineStatement, error) {
	if _, err := p.expect(ast.TokCloseAngle); err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokOpenBracket); err != nil {
		return nil, err
	}
	quote, err := p.expectText()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokCloseBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.TokOpenAngle); err != nil {
		return nil, err
	}
	return &ast.BlockQuote{Value: quote}, nil
}

// parseText parses a single UserString.
func (p *Parser) parseText() (ast.InlineStatement, error) {
	text, err := p.expectText()
	if err != nil {
		return nil, err
	}
	return &ast.Text{Value: text}, nil
}

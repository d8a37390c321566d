package ast

import "strconv"

// TokenKind classifies a token produced by the lexer.
type TokenKind uint8

// Token kinds. The set is closed; the parser imposes all structure.
const (
	TokNewLine         TokenKind = iota // '\n' or '\r'
	TokBoldText                         // '*'
	TokOpenCurly                        // '{'
	TokOpenAngle                        // '<'
	TokUserString                       // maximal run of text runes
	TokCloseAngle                       // '>'
	TokCloseCurly                       // '}'
	TokListMarker                       // '~'
	TokItalicText                       // '$'
	TokLinkMarker                       // '#'
	TokOpenSquare                       // '['
	TokImageMarker                      // '@'
	TokCloseSquare                      // ']'
	TokOpenBracket                      // '('
	TokCloseBracket                     // ')'
	TokHeadingMarker                    // "<3"
	TokDocumentLimiter                  // "(^-^)"
)

//nolint:gochecknoglobals // Read-only lookup table.
var tokenKindNames = [...]string{
	TokNewLine:         "NewLine",
	TokBoldText:        "BoldText",
	TokOpenCurly:       "OpenCurly",
	TokOpenAngle:       "OpenAngle",
	TokUserString:      "UserString",
	TokCloseAngle:      "CloseAngle",
	TokCloseCurly:      "CloseCurly",
	TokListMarker:      "ListMarker",
	TokItalicText:      "ItalicText",
	TokLinkMarker:      "LinkMarker",
	TokOpenSquare:      "OpenSquare",
	TokImageMarker:     "ImageMarker",
	TokCloseSquare:     "CloseSquare",
	TokOpenBracket:     "OpenBracket",
	TokCloseBracket:    "CloseBracket",
	TokHeadingMarker:   "HeadingMarker",
	TokDocumentLimiter: "DocumentLimiter",
}

// String returns the kind name, e.g. "HeadingMarker".
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a classified, position-tagged unit of source.
// Tokens are immutable once produced.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Value holds the text of a UserString token. Empty for every other kind.
	Value string

	// Start is the position before the token was consumed.
	Start Position

	// End is the position after the token was consumed.
	End Position
}

// Text returns the token's free text and whether it carries one.
// Only UserString tokens carry text.
func (t Token) Text() (string, bool) {
	if t.Kind != TokUserString || t.Value == "" {
		return "", false
	}
	return t.Value, true
}

// Span returns the source range of the token.
func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

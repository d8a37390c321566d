// Package diag defines the error taxonomy shared by every stage of the
// Jirai pipeline.
//
// Each stage fails fast and returns a single *Error. Callers match kinds
// with errors.Is against the exported sentinels and recover positions with
// errors.As or Position.
package diag

import (
	"errors"
	"fmt"

	"github.com/yaklabco/jirai/pkg/ast"
)

// Kind classifies a pipeline error.
type Kind uint8

const (
	KindEmptySource Kind = iota + 1
	KindIllegalCharacter
	KindEmptyTokenStream
	KindUnexpectedEndOfStream
	KindExpectedToken
	KindExpectedHeadingMarker
	KindExpectedLinkOrImageMarker
	KindEmptyAST
	KindMissingAltText

	// KindMissingValue signals a UserString token without text. The lexer
	// never produces one, so this is an internal consistency failure.
	KindMissingValue
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = map[Kind]string{
	KindEmptySource:               "EmptySource",
	KindIllegalCharacter:          "IllegalCharacter",
	KindEmptyTokenStream:          "EmptyTokenStream",
	KindUnexpectedEndOfStream:     "UnexpectedEndOfStream",
	KindExpectedToken:             "ExpectedToken",
	KindExpectedHeadingMarker:     "ExpectedHeadingMarker",
	KindExpectedLinkOrImageMarker: "ExpectedLinkOrImageMarker",
	KindEmptyAST:                  "EmptyAST",
	KindMissingAltText:            "MissingAltText",
	KindMissingValue:              "MissingValue",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinel errors for matching with errors.Is.
var (
	ErrEmptySource               = &Error{Kind: KindEmptySource, Message: "source cannot be empty"}
	ErrIllegalCharacter          = &Error{Kind: KindIllegalCharacter, Message: "illegal character"}
	ErrEmptyTokenStream          = &Error{Kind: KindEmptyTokenStream, Message: "token stream cannot be empty"}
	ErrUnexpectedEndOfStream     = &Error{Kind: KindUnexpectedEndOfStream, Message: "unexpected end of token stream"}
	ErrExpectedToken             = &Error{Kind: KindExpectedToken, Message: "unexpected token"}
	ErrExpectedHeadingMarker     = &Error{Kind: KindExpectedHeadingMarker, Message: "no heading marker encountered"}
	ErrExpectedLinkOrImageMarker = &Error{Kind: KindExpectedLinkOrImageMarker, Message: "expected link or image marker"}
	ErrEmptyAST                  = &Error{Kind: KindEmptyAST, Message: "the AST cannot be empty"}
	ErrMissingAltText            = &Error{Kind: KindMissingAltText, Message: "missing alt text"}
	ErrMissingValue              = &Error{Kind: KindMissingValue, Message: "text token without value"}
)

// Error is a single pipeline failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Message is the human-readable description, without position.
	Message string

	// Pos is where the failure was detected. Only meaningful when HasPos is set.
	Pos ast.Position

	// HasPos reports whether Pos is set.
	HasPos bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// New creates an error without a position.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At creates an error anchored at pos.
func At(kind Kind, pos ast.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true}
}

// Position extracts the source position from err, if it carries one.
func Position(err error) (ast.Position, bool) {
	var diagErr *Error
	if errors.As(err, &diagErr) && diagErr.HasPos {
		return diagErr.Pos, true
	}
	return ast.Position{}, false
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var diagErr *Error
	if errors.As(err, &diagErr) {
		return diagErr.Kind
	}
	return 0
}

package ast

import "fmt"

// Position is a zero-based line and column in the original source.
// Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// String returns the 1-based "line:column" form used in diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Before reports whether p comes strictly before other, comparing
// lines first and then columns.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is the source range covered by a token.
type Span struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Width returns the number of runes covered on a single-line span.
// Returns 0 for spans crossing lines.
func (s Span) Width() int {
	if !s.IsSingleLine() {
		return 0
	}
	return s.End.Column - s.Start.Column
}

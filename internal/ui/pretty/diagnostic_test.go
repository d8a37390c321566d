package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirai/internal/ui/pretty"
	"github.com/yaklabco/jirai/pkg/ast"
	"github.com/yaklabco/jirai/pkg/diag"
)

func TestFormatError_WithPosition(t *testing.T) {
	styles := pretty.NewStyles(false)

	source := "<3 Title\nsome ^ text\n"
	err := diag.At(diag.KindIllegalCharacter, ast.Position{Line: 1, Column: 5}, "illegal character %q", '^')

	result := styles.FormatError("page.jirai", err, source)

	assert.Contains(t, result, "page.jirai:2:6")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, `illegal character '^'`)
	assert.Contains(t, result, "(IllegalCharacter)")

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "        some ^ text", lines[1])
	assert.Equal(t, "             ^", lines[2], "caret sits under the reported column")
}

func TestFormatError_WithoutPosition(t *testing.T) {
	styles := pretty.NewStyles(false)

	err := diag.New(diag.KindMissingAltText, "no \"alt\" text supplied to image %q", "a.png")
	result := styles.FormatError("page.jirai", err, "{@[][a.png]}\n")

	assert.Contains(t, result, "page.jirai  error")
	assert.Contains(t, result, "(MissingAltText)")
	assert.NotContains(t, result, "^")
}

func TestFormatError_PlainError(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatError("gone.jirai", errors.New("file not found"), "")

	assert.Equal(t, "  gone.jirai  error  file not found\n", result)
}

func TestFormatSourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("<3 Heading", 1)
	assert.Equal(t, "        <3 Heading\n        ^\n", result)

	result = styles.FormatSourceContext("<3 Heading", 0)
	assert.NotContains(t, result, "^", "no caret without a column")
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
		want   string
		wantOK bool
	}{
		{"first line", "a\nb\n", 0, "a", true},
		{"second line", "a\nb\n", 1, "b", true},
		{"carriage return trimmed", "a\r\nb", 0, "a", true},
		{"past end", "a\n", 5, "", false},
		{"negative", "a\n", -1, "", false},
		{"empty source", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pretty.SourceLine(tt.source, tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "page.jirai", styles.FormatFileHeader("page.jirai", 0))
	assert.Equal(t, "page.jirai (1 error)", styles.FormatFileHeader("page.jirai", 1))
	assert.Equal(t, "page.jirai (3 errors)", styles.FormatFileHeader("page.jirai", 3))
}

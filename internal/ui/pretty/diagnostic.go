package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/jirai/pkg/diag"
)

// FormatError formats a compilation failure for terminal output. When err
// carries a source position and source is non-empty, the offending line is
// shown with a caret under the reported column.
func (s *Styles) FormatError(path string, err error, source string) string {
	var builder strings.Builder

	var diagErr *diag.Error
	if !errors.As(err, &diagErr) {
		builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(path),
			s.Error.Render("error"),
			s.Message.Render(err.Error()),
		))
		return builder.String()
	}

	location := s.FilePath.Render(path)
	if diagErr.HasPos {
		location += s.Location.Render(":" + diagErr.Pos.String())
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(diagErr.Message),
		s.Kind.Render("("+diagErr.Kind.String()+")"),
	))

	if diagErr.HasPos {
		if line, ok := SourceLine(source, diagErr.Pos.Line); ok {
			builder.WriteString(s.FormatSourceContext(line, diagErr.Pos.Column+1))
		}
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under
// the 1-based rune column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// SourceLine returns the zero-based line of source without its terminator.
func SourceLine(source string, line int) (string, bool) {
	if source == "" || line < 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line], "\r"), true
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	if errorCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", errorCount, plural(errorCount, "error", "errors")))
	}
	return header
}

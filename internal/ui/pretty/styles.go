// Package pretty renders compiler diagnostics and run summaries for a
// terminal using lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette indices.
const (
	colorRed   = lipgloss.Color("9")
	colorGreen = lipgloss.Color("10")
	colorGrey  = lipgloss.Color("8")
	colorLight = lipgloss.Color("7")
)

// Styles holds one renderer per element of the compiler's output.
type Styles struct {
	Error      lipgloss.Style
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Kind       lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Dim          lipgloss.Style
}

// NewStyles returns coloured styles, or styles that render text unchanged
// when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	style := func(color lipgloss.Color, bold bool) lipgloss.Style {
		s := lipgloss.NewStyle()
		if !colorEnabled {
			return s
		}
		if color != "" {
			s = s.Foreground(color)
		}
		return s.Bold(bold)
	}

	return &Styles{
		Error:      style(colorRed, true),
		FilePath:   style("", true),
		Location:   style(colorGrey, false),
		Kind:       style(colorGrey, false),
		Message:    style("", false),
		SourceLine: style(colorLight, false),
		Caret:      style(colorRed, false),

		SummaryTitle: style("", true),
		SummaryValue: style("", false),
		Success:      style(colorGreen, true),
		Failure:      style(colorRed, true),
		Dim:          style(colorGrey, false),
	}
}

// IsColorEnabled resolves a --color mode ("auto", "always" or "never")
// for writer. Auto enables colour for terminals unless NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

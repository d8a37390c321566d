package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/jirai/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files compiled, 2 written, 1 unchanged, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Jirai files found") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%d %s compiled", stats.FilesCompiled, plural(stats.FilesCompiled, "file", "files")),
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.FilesUnchanged)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files found:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files compiled:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesCompiled)) + "\n")

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Files unchanged:   " +
			s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Compilation failed"))
	} else {
		builder.WriteString(s.Success.Render("Compilation succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}

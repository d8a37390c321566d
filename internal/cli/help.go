package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/jirai/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Example    lipgloss.Style
	Dim        lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:    plain,
			Heading:    plain,
			Subcommand: plain,
			Flag:       plain,
			Example:    plain,
			Dim:        plain,
		}
	}
	return &HelpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (pad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	render := func(command *cobra.Command) error {
		tmpl, err := template.New("help").Funcs(h.funcs()).Parse(helpTemplate)
		if err != nil {
			return fmt.Errorf("parse help template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	}

	cmd.SetUsageFunc(render)
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.Heading.Render,
		"command":    h.styles.Command.Render,
		"subcommand": h.styles.Subcommand.Render,
		"example":    h.styles.Example.Render,
		"flags":      h.formatFlags,
		"pad":        pad,
		"trimRight":  trimTrailingWhitespace,
	}
}

// formatFlags lists the visible flags of set, one per line, with names
// aligned in a column.
func (h *HelpFormatter) formatFlags(set *pflag.FlagSet) string {
	type row struct{ names, usage string }

	var rows []row
	width := 0
	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		names := "    --" + flag.Name
		if flag.Shorthand != "" {
			names = "-" + flag.Shorthand + ", --" + flag.Name
		}
		kind, usage := pflag.UnquoteUsage(flag)
		if kind != "" {
			names += " " + kind
		}
		if flag.DefValue != "" && flag.DefValue != "false" && flag.DefValue != "[]" && flag.DefValue != "0" {
			usage += fmt.Sprintf(" (default %q)", flag.DefValue)
		}

		rows = append(rows, row{names: names, usage: usage})
		width = max(width, len(names))
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, "  "+h.styles.Flag.Render(pad(r.names, width))+"   "+r.usage)
	}
	return strings.Join(lines, "\n")
}

// pad adds spaces to the right of s up to width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format names a report layout.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

// constructors builds a Reporter for each known format.
//
//nolint:gochecknoglobals // Read-only lookup table.
var constructors = map[Format]func(Options) Reporter{
	FormatText:    func(o Options) Reporter { return NewTextReporter(o) },
	FormatJSON:    func(o Options) Reporter { return NewJSONReporter(o) },
	FormatSummary: func(o Options) Reporter { return NewSummaryReporter(o) },
}

// Formats returns the known formats in sorted order.
func Formats() []Format {
	formats := make([]Format, 0, len(constructors))
	for f := range constructors {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// ParseFormat resolves a --format value. The empty string means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(name)
	if !format.IsValid() {
		names := make([]string, 0, len(constructors))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(names, ", "))
	}
	return format, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f has a reporter.
func (f Format) IsValid() bool {
	_, ok := constructors[f]
	return ok
}

// Package langdetect guesses the programming language of inline code.
//
// Inline Jirai code is a single line and cannot contain the markup's
// reserved characters, so detection leans on leading keywords first and
// falls back to the go-enry classifier.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined.
const Unknown = "text"

// Language names as used in "language-*" classes.
const (
	langGo         = "go"
	langPython     = "python"
	langJavaScript = "javascript"
	langSQL        = "sql"
	langRust       = "rust"
	langBash       = "bash"
)

// keywordPrefixes maps leading keywords to a language. Order matters:
// the first matching prefix wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywordPrefixes = []struct {
	prefix string
	lang   string
}{
	{"package ", langGo},
	{"func ", langGo},
	{"go ", langGo},
	{"import \"", langGo},
	{"from ", langPython},
	{"import ", langPython},
	{"def ", langPython},
	{"SELECT ", langSQL},
	{"INSERT ", langSQL},
	{"UPDATE ", langSQL},
	{"DELETE ", langSQL},
	{"CREATE ", langSQL},
	{"let mut ", langRust},
	{"fn ", langRust},
	{"cargo ", langRust},
	{"const ", langJavaScript},
	{"let ", langJavaScript},
	{"var ", langJavaScript},
	{"npm ", langJavaScript},
	{"echo ", langBash},
	{"export ", langBash},
	{"sudo ", langBash},
	{"cd ", langBash},
}

// classifierCandidates limits the classifier to languages likely to show
// up in prose.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "Rust", "SQL",
}

// Detect returns the language of a code snippet, or Unknown.
func Detect(content []byte) string {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return Unknown
	}

	if lang := detectByKeyword(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(trimmed), classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// detectByKeyword matches leading keywords. SQL keywords are matched
// case-insensitively.
func detectByKeyword(snippet string) string {
	upper := strings.ToUpper(snippet)
	for _, entry := range keywordPrefixes {
		if strings.HasPrefix(snippet, entry.prefix) {
			return entry.lang
		}
		if entry.lang == langSQL && strings.HasPrefix(upper, entry.prefix) {
			return entry.lang
		}
	}
	if strings.Contains(snippet, ":= ") {
		return langGo
	}
	if strings.Contains(snippet, "println!") {
		return langRust
	}
	return ""
}

// normalize converts go-enry language names to class suffixes.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}

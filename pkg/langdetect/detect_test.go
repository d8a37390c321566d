package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jirai/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"go package clause", "package main", "go"},
		{"go short assignment", "x := 42", "go"},
		{"go import", `import "fmt"`, "go"},
		{"python import", "import os", "python"},
		{"python from import", "from pathlib import Path", "python"},
		{"sql upper", "SELECT id FROM users", "sql"},
		{"sql lower", "select id from users", "sql"},
		{"rust let mut", "let mut count = 0;", "rust"},
		{"rust macro", "println!", "rust"},
		{"javascript const", "const answer = 42;", "javascript"},
		{"bash echo", "echo hello", "bash"},
		{"leading whitespace", "   package main", "go"},
		{"empty", "", langdetect.Unknown},
		{"whitespace only", "   ", langdetect.Unknown},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, langdetect.Detect([]byte(testCase.content)))
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	code := []byte("SELECT id FROM users")
	b.ResetTimer()
	for range b.N {
		langdetect.Detect(code)
	}
}

package logging_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/jirai/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	for level, want := range map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"Info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.InfoLevel,
		"verbose": log.InfoLevel,
		"":        log.InfoLevel,
	} {
		if got := logging.New(level).GetLevel(); got != want {
			t.Errorf("New(%q) level = %v, want %v", level, got, want)
		}
	}
}

// The default logger is process-wide, so these tests do not run in parallel.
func TestDefault_SetAndLevel(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	if original == nil {
		t.Fatal("Default() returned nil")
	}

	replacement := logging.New("error")
	logging.SetDefault(replacement)
	if logging.Default() != replacement {
		t.Fatal("SetDefault did not replace the default logger")
	}

	logging.SetLevel("debug")
	if got := replacement.GetLevel(); got != log.DebugLevel {
		t.Errorf("after SetLevel(debug) level = %v", got)
	}
}

func TestDefault_ConcurrentFirstUse(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })
	logging.SetDefault(nil)

	loggers := make(chan *log.Logger, 8)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loggers <- logging.Default()
		}()
	}
	wg.Wait()
	close(loggers)

	first := <-loggers
	for logger := range loggers {
		if logger != first {
			t.Fatal("concurrent callers saw different default loggers")
		}
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	if logger == nil {
		t.Fatal("NewInteractive returned nil logger")
	}

	// Interactive loggers should default to info level
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", logger.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("compile failed", logging.FieldPath, "index.jirai")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "compile failed") || !strings.Contains(out, "index.jirai") {
		t.Errorf("expected warn message with path field, got %q", out)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the attached logger")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext without logger should fall back to the default")
	}
}

func TestWithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "info"))
	ctx = logging.WithFields(ctx, logging.FieldPath, "about.jirai")

	logging.FromContext(ctx).Info("compiled")

	if !strings.Contains(buf.String(), "about.jirai") {
		t.Errorf("expected inherited field in output, got %q", buf.String())
	}
}

package cli_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/yaklabco/jirai/internal/cli"
	"github.com/yaklabco/jirai/pkg/fsutil"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "jirai" {
		t.Errorf("expected Use to be 'jirai', got %q", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("expected Short and Long descriptions to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, path := range [][]string{{"compile"}, {"init"}, {"config", "show"}, {"config", "env"}, {"version"}} {
		subCmd, _, err := cmd.Find(path)
		if err != nil {
			t.Errorf("expected subcommand %v to exist, got error: %v", path, err)
			continue
		}
		if subCmd.Name() != path[len(path)-1] {
			t.Errorf("expected subcommand name %q, got %q", path[len(path)-1], subCmd.Name())
		}
	}
}

func TestCompileCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	compileCmd, _, err := cmd.Find([]string{"compile"})
	if err != nil {
		t.Fatalf("compile command not found: %v", err)
	}

	expectedFlags := []string{
		"minify", "alt-enforcing", "escape", "annotate-code", "document", "title",
		"output-dir", "stdout", "force", "jobs", "ignore", "ext", "format",
		"no-context", "compact", "verbose",
	}
	for _, name := range expectedFlags {
		if compileCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s on compile", name)
		}
	}

	for _, name := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"compile failed", cli.ErrCompileFailed, cli.ExitCompileErrors},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: bad value", cli.ErrConfig), cli.ExitConfigError},
		{"fsutil sentinel", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"path error", fmt.Errorf("stat: %w", &os.PathError{Op: "stat", Path: "x", Err: os.ErrNotExist}), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	if got := cli.ExitCodeFromResult(nil); got != cli.ExitSuccess {
		t.Errorf("ExitCodeFromResult(nil) = %d, want %d", got, cli.ExitSuccess)
	}
}

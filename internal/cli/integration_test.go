package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirai/internal/cli"
	"github.com/yaklabco/jirai/pkg/fsutil"
	"github.com/yaklabco/jirai/pkg/reporter"
)

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSource writes a Jirai file into a fresh temp dir and returns its path.
func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// emptyConfig returns an explicit config file with no settings.
func emptyConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".jirai.yml")
	require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0o600))
	return path
}

func TestIntegration_CompileWritesHTML(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "page.jirai", "<3 Hello\n*bold* text\n")

	stdout, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--color", "never", "--minify", src)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(filepath.Dir(src), "page.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1> Hello</h1><p><b>bold</b> text</p>", string(html))
	assert.Contains(t, stdout, "1 file compiled, 1 written")
}

func TestIntegration_CompileStdoutFlag(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "page.jirai", "~ one\n~ two\n")

	stdout, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--color", "never", "--stdout", "-m", src)
	require.NoError(t, err)

	assert.Equal(t, "<ul><li> one</li><li> two</li></ul>\n", stdout)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(src), "page.html"))
	assert.True(t, os.IsNotExist(statErr), "--stdout must not write files")
}

func TestIntegration_CompileFromStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "<3 Hi\n", "compile", "--config", emptyConfig(t), "-")
	require.NoError(t, err)
	assert.Equal(t, "<h1> Hi</h1>\n", stdout)
}

func TestIntegration_CompileStdinError(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "text ^\n", "compile", "--config", emptyConfig(t), "--color", "never", "-")
	require.ErrorIs(t, err, cli.ErrCompileFailed)
	assert.Equal(t, cli.ExitCompileErrors, cli.ExitCodeForError(err))

	assert.Contains(t, stderr, "<stdin>:1:6")
	assert.Contains(t, stderr, "(IllegalCharacter)")
	assert.Contains(t, stderr, "        text ^\n             ^\n")
}

func TestIntegration_CompileStdinInvalidUTF8(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "\xff\n", "compile", "--config", emptyConfig(t), "-")
	require.ErrorIs(t, err, fsutil.ErrInvalidEncoding)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
	assert.Empty(t, stdout)
}

func TestIntegration_CompileErrorReported(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "broken.jirai", "{@[alt]}\n")

	stdout, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--color", "never", src)
	require.ErrorIs(t, err, cli.ErrCompileFailed)

	assert.Contains(t, stdout, "broken.jirai:1:")
	assert.Contains(t, stdout, "1 failed")
}

func TestIntegration_AltEnforcing(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "img.jirai", "{@[][a.png]}\n")
	cfg := emptyConfig(t)

	_, _, err := execute(t, "", "compile", "--config", cfg, "--stdout", src)
	require.NoError(t, err)

	stdout, stderr, err := execute(t, "", "compile", "--config", cfg, "--color", "never", "--alt-enforcing", src)
	require.ErrorIs(t, err, cli.ErrCompileFailed)
	assert.Contains(t, stdout+stderr, "(MissingAltText)")
}

func TestIntegration_JSONReport(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "page.jirai", "plain\n")
	outDir := t.TempDir()

	stdout, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--format", "json", "--output-dir", outDir, src)
	require.NoError(t, err)

	var report reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Files, 1)
	assert.True(t, report.Files[0].Written)
	assert.Equal(t, 1, report.Summary.FilesWritten)

	html, err := os.ReadFile(filepath.Join(outDir, "page.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>plain</p>", string(html))
}

func TestIntegration_ConfigFileApplies(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), ".jirai.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("minify: true\nescape_html: true\n"), 0o600))
	src := writeSource(t, "page.jirai", "a & b\n")

	stdout, _, err := execute(t, "", "compile", "--config", cfgPath, "--stdout", src)
	require.NoError(t, err)
	assert.Equal(t, "<p>a &amp; b</p>\n", stdout)
}

func TestIntegration_DocumentMode(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "doc.jirai", "(^-^)\n<3 Welcome\n(^-^)\n")

	stdout, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--document", "--stdout", src)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "<!DOCTYPE html>"))
	assert.Contains(t, stdout, "<title>Welcome</title>")
	assert.Contains(t, stdout, "<h1> Welcome</h1>")
}

func TestIntegration_InvalidFormat(t *testing.T) {
	t.Parallel()

	src := writeSource(t, "page.jirai", "x\n")

	_, _, err := execute(t, "", "compile", "--config", emptyConfig(t), "--format", "xml", src)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(err))
}

func TestIntegration_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "compile", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestIntegration_MissingPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.jirai")

	_, _, err := execute(t, "", "compile", "--config", emptyConfig(t), missing)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, ".jirai.yml")

	_, _, err := execute(t, "", "init", "--output", yamlPath)
	require.NoError(t, err)
	content, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "minify: false")

	_, _, err = execute(t, "", "init", "--output", yamlPath)
	require.Error(t, err, "existing file without --force")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))

	_, _, err = execute(t, "", "init", "--output", yamlPath, "--force")
	require.NoError(t, err)

	tomlPath := filepath.Join(dir, ".jirai.toml")
	_, _, err = execute(t, "", "init", "--format", "toml", "--output", tomlPath)
	require.NoError(t, err)
	content, err = os.ReadFile(tomlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "minify = false")

	_, _, err = execute(t, "", "init", "--format", "json", "--output", filepath.Join(dir, "x.json"))
	require.Error(t, err)
}

func TestIntegration_ConfigShow(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "site.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("minify: true\ntitle: Site\n"), 0o600))

	stdout, _, err := execute(t, "", "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "minify: true")
	assert.Contains(t, stdout, "title: Site")

	stdout, _, err = execute(t, "", "config", "show", "--config", cfgPath, "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "minify = true")
}

func TestIntegration_ConfigEnv(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "config", "env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "JIRAI_MINIFY")
	assert.Contains(t, stdout, "JIRAI_SOURCE_KIND")
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
	assert.Contains(t, stdout, "test-commit")

	stdout, _, err = execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "test-version\n", stdout)
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "compile", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--alt-enforcing")
	assert.Contains(t, stdout, "Examples:")
}

//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary    = "bin/jirai"
	mainPkg   = "./cmd/jirai"
	goldenDir = "pkg/compiler/testdata/golden"
	siteDir   = "bin/site"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b": Build,
	"t": Test.Default,
	"l": Lint.Default,
	"s": Smoke,
	"f": Fuzz.Default,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
	Fuzz  st.Namespace
)

// Build compiles bin/jirai with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Install runs go install with version info.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Smoke compiles the golden corpus with the built binary into bin/site.
// The document case needs --document and is compiled on its own.
func Smoke() error {
	st.Deps(Build)
	if err := sh.RunV(binary, "compile", goldenDir,
		"--output-dir", siteDir, "--ignore", "document.jirai", "--force", "--format", "summary",
	); err != nil {
		return err
	}
	return sh.RunV(binary, "compile", goldenDir+"/document.jirai",
		"--document", "--output-dir", siteDir, "--force",
	)
}

// Coverage writes coverage.html and fails below COVERAGE_MIN percent
// (default 70).
func Coverage() error {
	st.Deps(Test.Default)
	if err := sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html"); err != nil {
		return err
	}

	report, err := sh.Output("go", "tool", "cover", "-func=coverage.out")
	if err != nil {
		return err
	}
	total, err := totalCoverage(report)
	if err != nil {
		return err
	}
	minimum, err := strconv.ParseFloat(cmp.Or(os.Getenv("COVERAGE_MIN"), "70"), 64)
	if err != nil {
		return fmt.Errorf("parse COVERAGE_MIN: %w", err)
	}

	fmt.Printf("coverage %.1f%% (minimum %.1f%%)\n", total, minimum)
	if total < minimum {
		return fmt.Errorf("coverage %.1f%% is below %.1f%%", total, minimum)
	}
	return nil
}

// Default runs every test with the race detector through gotestsum.
func (Test) Default() error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", "pkgname-and-test-fails", "--",
		"-race", "-p", procs, "-parallel", procs,
		"-coverprofile=coverage.out", "-covermode=atomic",
		"./...",
	)
}

// Golden regenerates the expected HTML in testdata/golden.
func (Test) Golden() error {
	return sh.RunV("go", "test", "./pkg/compiler", "-run", "^TestGolden$", "-update")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Gate runs the checks CI requires, without modifying files.
func (CI) Gate() error {
	unformatted, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if unformatted != "" {
		return fmt.Errorf("unformatted files:\n%s", unformatted)
	}

	st.SerialDeps(CI.Lint, Test.Default, Smoke, CI.ModTidy)
	return nil
}

// Lint runs go vet and golangci-lint without fixes.
func (CI) Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if before != after {
		return errors.New("go.mod or go.sum changed after 'go mod tidy'")
	}
	return nil
}

// Default runs the benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

//nolint:gochecknoglobals // Fuzz target table.
var fuzzTargets = []struct{ name, pkg string }{
	{"FuzzTokenize", "./pkg/lexer"},
	{"FuzzCompile", "./pkg/compiler"},
}

// Default fuzzes each target for FUZZTIME (default 30s).
func (Fuzz) Default() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "30s")
	for _, ft := range fuzzTargets {
		fmt.Printf("fuzzing %s for %s\n", ft.name, fuzzTime)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+ft.name+"$", "-fuzztime="+fuzzTime, ft.pkg); err != nil {
			return fmt.Errorf("fuzz %s: %w", ft.name, err)
		}
	}
	return nil
}

// readModFiles returns go.mod and go.sum joined. A missing go.sum reads
// as empty.
func readModFiles() (string, error) {
	mod, err := os.ReadFile("go.mod")
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	sum, err := os.ReadFile("go.sum")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read go.sum: %w", err)
	}
	return string(mod) + "\x00" + string(sum), nil
}

// totalCoverage extracts the percentage from the "total:" line of
// "go tool cover -func" output.
func totalCoverage(report string) (float64, error) {
	for line := range strings.Lines(report) {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		percent := strings.TrimSuffix(fields[len(fields)-1], "%")
		value, err := strconv.ParseFloat(percent, 64)
		if err != nil {
			return 0, fmt.Errorf("parse coverage %q: %w", percent, err)
		}
		return value, nil
	}
	return 0, errors.New("coverage report has no total line")
}

// gitOutput returns trimmed git output, or "" on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/jirai/pkg/compiler"
	"github.com/yaklabco/jirai/pkg/fsutil"
)

// outputExtension replaces the source extension of generated files.
const outputExtension = ".html"

// Run discovers sources under opts.Paths and compiles them with a worker
// pool. Outcomes are ordered by path regardless of completion order.
// Per-file failures are recorded in the result; the returned error is
// reserved for discovery failures and cancellation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		result.Duration = time.Since(started)
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range workCh {
				outcome := compileFile(ctx, file, workDir, opts)
				select {
				case <-ctx.Done():
					return
				case outCh <- outcome:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, file := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- file:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, file := range files {
		if outcome, ok := outcomes[file]; ok {
			result.accumulate(outcome)
		}
	}
	result.Duration = time.Since(started)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// compileFile reads, compiles and writes one source.
func compileFile(ctx context.Context, file, workDir string, opts Options) (outcome FileOutcome) {
	started := time.Now()
	outcome = FileOutcome{
		Path:       file,
		OutputPath: OutputPath(file, workDir, opts.OutputDir),
	}
	defer func() { outcome.Duration = time.Since(started) }()

	source, info, err := fsutil.ReadSource(ctx, file)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.SourceHash = info.HashHex()

	html, err := compiler.Compile(source, opts.Compile)
	if err != nil {
		outcome.Error = err
		outcome.Source = source
		return outcome
	}

	if opts.NoWrite {
		outcome.HTML = html
		return outcome
	}

	if opts.Force {
		err = fsutil.WriteAtomic(ctx, outcome.OutputPath, []byte(html), fsutil.DefaultFileMode)
		outcome.Written = err == nil
	} else {
		outcome.Written, err = fsutil.WriteAtomicIfChanged(ctx, outcome.OutputPath, []byte(html), fsutil.DefaultFileMode)
		outcome.Unchanged = err == nil && !outcome.Written
	}
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outcome.OutputPath, err)
	}

	return outcome
}

// OutputPath returns where the HTML for source goes. Without outputDir the
// file sits beside its source. Otherwise the source's location relative to
// workDir is mirrored under outputDir; sources outside workDir land at the
// top of outputDir.
func OutputPath(source, workDir, outputDir string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + outputExtension
	if outputDir == "" {
		return filepath.Join(filepath.Dir(source), name)
	}

	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(workDir, outputDir)
	}

	relDir, err := filepath.Rel(workDir, filepath.Dir(source))
	if err != nil || relDir == ".." || strings.HasPrefix(relDir, ".."+string(filepath.Separator)) {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(outputDir, relDir, name)
}

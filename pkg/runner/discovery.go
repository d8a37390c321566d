package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// discoverer holds the state of one Discover call.
type discoverer struct {
	opts       Options
	workDir    string
	extensions []string
	seen       map[string]struct{}
	files      []string
}

// Discover finds Jirai sources matching opts. It returns a sorted,
// deduplicated list of absolute file paths. Paths given explicitly are
// included when their extension matches, even if they are hidden.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		opts:       opts,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		seen:       make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := input
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}
		if d.matches(absPath) {
			d.add(absPath)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func (d *discoverer) add(file string) {
	if _, ok := d.seen[file]; ok {
		return
	}
	d.seen[file] = struct{}{}
	d.files = append(d.files, file)
}

// walk adds every matching file under root. Hidden entries below root
// and excluded directories are skipped.
func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(current string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := current != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || d.excluded(current) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.walkSymlink(ctx, current)
		}

		if d.matches(current) {
			d.add(current)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// walkSymlink resolves a symlink found during a walk. Broken links are
// skipped; directory links are followed only with FollowSymlinks.
func (d *discoverer) walkSymlink(ctx context.Context, link string) error {
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreadable targets are skipped.
	}

	if info.IsDir() {
		if !d.opts.FollowSymlinks {
			return nil
		}
		// Walk the target so WalkDir does not stop at the link itself.
		return d.walk(ctx, target)
	}

	if d.matches(link) {
		d.add(link)
	}
	return nil
}

// matches reports whether file has a source extension and is not excluded.
func (d *discoverer) matches(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	if !slices.ContainsFunc(d.extensions, func(e string) bool { return strings.ToLower(e) == ext }) {
		return false
	}
	return !d.excluded(file)
}

// excluded reports whether file matches an exclude glob, relative to the
// working directory.
func (d *discoverer) excluded(file string) bool {
	rel, err := filepath.Rel(d.workDir, file)
	if err != nil {
		rel = file
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range d.opts.ExcludeGlobs {
		if matchGlob(rel, filepath.ToSlash(pattern)) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob. Patterns
// without a slash also match the base name. "**" matches zero or more
// whole segments.
func matchGlob(name, pattern string) bool {
	if !strings.Contains(pattern, "**") {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			ok, err := path.Match(pattern, path.Base(name))
			return err == nil && ok
		}
		return false
	}

	return matchSegments(strings.Split(name, "/"), strings.Split(pattern, "/"))
}

// matchSegments matches path segments against pattern segments. A
// trailing "**" also matches the directory itself.
func matchSegments(name, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchSegments(name[i:], rest) {
					return true
				}
			}
			return false
		}

		if len(name) == 0 {
			return false
		}
		if ok, err := path.Match(pattern[0], name[0]); err != nil || !ok {
			return false
		}
		name, pattern = name[1:], pattern[1:]
	}
	return len(name) == 0
}

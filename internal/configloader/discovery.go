package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// Scope names the layer a configuration file belongs to.
type Scope string

// Scopes from lowest to highest precedence.
const (
	ScopeSystem   Scope = "system"
	ScopeUser     Scope = "user"
	ScopeProject  Scope = "project"
	ScopeExplicit Scope = "explicit"
)

// Layer is one configuration file and the scope it was found in.
type Layer struct {
	Scope Scope
	Path  string
}

// ConfigPaths holds the configuration files found for a working
// directory. A layer with no file is the empty string.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// Layers returns the files that exist, lowest precedence first.
func (p *ConfigPaths) Layers() []Layer {
	all := []Layer{
		{ScopeSystem, p.System},
		{ScopeUser, p.User},
		{ScopeProject, p.Project},
		{ScopeExplicit, p.Explicit},
	}
	return slices.DeleteFunc(all, func(l Layer) bool { return l.Path == "" })
}

const appDir = "jirai"

// Project files are tried in this order in every directory on the way up.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectNames = []string{
	".jirai.yml", ".jirai.yaml", ".jirai.toml",
	"jirai.yml", "jirai.yaml", "jirai.toml",
}

// System and user directories hold a single config.* file.
//
//nolint:gochecknoglobals // Read-only lookup table.
var scopeDirNames = []string{"config.yaml", "config.yml", "config.toml"}

// DiscoverPaths looks up the system, user and project configuration
// files for workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemDir(), scopeDirNames),
		User:    firstFile(userDir(), scopeDirNames),
		Project: project,
	}, nil
}

func systemDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appDir)
	}
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}
	return filepath.Join(base, appDir)
}

// userDir follows XDG_CONFIG_HOME and falls back to ~/.config.
func userDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDir)
}

// FindProjectConfig returns the nearest project config file at or above
// startDir, or "" when there is none. The search gives up after a
// directory containing .git, .hg or .svn, and at the home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()
	for dir := range searchDirs(start, home) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, projectNames); path != "" {
			return path, nil
		}
	}
	return "", nil
}

// searchDirs yields dir and its ancestors. The sequence ends after a VCS
// root, after home, or at the filesystem root.
func searchDirs(dir, home string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) || isVCSRoot(dir) || dir == home {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func isVCSRoot(dir string) bool {
	return slices.ContainsFunc([]string{".git", ".hg", ".svn"}, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Permissions for generated HTML and the directories holding it.
const (
	DefaultFileMode os.FileMode = 0o644
	DefaultDirMode  os.FileMode = 0o755
)

// WriteAtomic replaces path with content so readers see either the old or
// the new file, never a partial one. Parent directories are created as
// needed. A zero mode means DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpPath, err := writeTemp(dir, filepath.Base(path), content, mode)
	if err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// writeTemp stores content in a synced temp file next to the target and
// returns its path. The temp file is removed on failure.
func writeTemp(dir, base string, content []byte, mode os.FileMode) (_ string, err error) {
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	return tmp.Name(), nil
}

// WriteAtomicIfChanged writes content only when it differs from what is
// already at path. It reports whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, fmt.Errorf("read existing: %w", err)
	case bytes.Equal(existing, content):
		return false, nil
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}

// Package fsutil provides file system helpers for reading Jirai sources and
// writing generated HTML safely.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates the content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// FileInfo captures the state of a source file when it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// HashHex returns the content hash as a lowercase hex string.
func (i *FileInfo) HashHex() string {
	return hex.EncodeToString(i.Hash[:])
}

// ReadSource reads a Jirai source file and returns its text with metadata.
// Sources must be valid UTF-8 since the lexer works on runes.
func ReadSource(ctx context.Context, path string) (string, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read source: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, classify(path, err)
	}
	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, classify(path, err)
	}
	text, err := DecodeSource(path, content)
	if err != nil {
		return "", nil, err
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return text, info, nil
}

// DecodeSource converts raw source bytes to text, rejecting invalid UTF-8.
// name labels the error.
func DecodeSource(name string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
	}
	return string(data), nil
}

// classify maps os errors onto the package sentinels.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// Package fsutil reads Markdown inputs and writes tool output. Reads carry
// a content hash so reports can identify the exact bytes that were parsed.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinPath names standard input on the command line.
const StdinPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrTooLarge         = errors.New("file too large")
)

// FileInfo describes the bytes returned by a read.
type FileInfo struct {
	Path string
	Size int64
	Hash [sha256.Size]byte
}

// HashHex returns the SHA-256 of the content as lowercase hex.
func (f *FileInfo) HashHex() string {
	return hex.EncodeToString(f.Hash[:])
}

// ReadFile reads path. Files larger than maxBytes fail with ErrTooLarge
// before being read; a non-positive maxBytes disables the check.
func ReadFile(ctx context.Context, path string, maxBytes int64) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if maxBytes > 0 && stat.Size() > maxBytes {
		return nil, nil, fmt.Errorf("%w: %s: %d bytes exceeds %d", ErrTooLarge, path, stat.Size(), maxBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, newInfo(path, content), nil
}

// ReadInput reads path, or r when path is StdinPath.
func ReadInput(ctx context.Context, path string, r io.Reader, maxBytes int64) ([]byte, *FileInfo, error) {
	if path != StdinPath {
		return ReadFile(ctx, path, maxBytes)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}

	reader := r
	if maxBytes > 0 {
		reader = io.LimitReader(r, maxBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, nil, fmt.Errorf("%w: stdin exceeds %d bytes", ErrTooLarge, maxBytes)
	}

	return content, newInfo(path, content), nil
}

func newInfo(path string, content []byte) *FileInfo {
	return &FileInfo{
		Path: path,
		Size: int64(len(content)),
		Hash: sha256.Sum256(content),
	}
}

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

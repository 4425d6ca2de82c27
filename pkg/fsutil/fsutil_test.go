package fsutil_test

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and hash", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		content := []byte("# hello\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		got, info, err := fsutil.ReadFile(context.Background(), path, 0)
		require.NoError(t, err)

		assert.Equal(t, content, got)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, sha256.Sum256(content), info.Hash)
		assert.Len(t, info.HashHex(), 64)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"), 0)
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "big.md")
		require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

		_, _, err := fsutil.ReadFile(context.Background(), path, 5)
		require.ErrorIs(t, err, fsutil.ErrTooLarge)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "any.md", 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		got, info, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, strings.NewReader("abc"), 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
		assert.Equal(t, fsutil.StdinPath, info.Path)
	})

	t.Run("stdin too large", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, strings.NewReader("abcdef"), 3)
		require.ErrorIs(t, err, fsutil.ErrTooLarge)
	})

	t.Run("stdin at limit", func(t *testing.T) {
		t.Parallel()

		got, _, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, strings.NewReader("abc"), 3)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		got, _, err := fsutil.ReadInput(context.Background(), path, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), got)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates and replaces", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("one"), 0))
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("two"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must be cleaned up")
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		require.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)
		assert.NoFileExists(t, path)
	})
}

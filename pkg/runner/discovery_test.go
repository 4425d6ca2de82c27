package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/runner"
)

// tree creates files (relative, slash-separated) under a fresh directory.
func tree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func abs(dir string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, filepath.Join(dir, filepath.FromSlash(name)))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"readme.md":           "# a",
		"docs/guide.md":       "b",
		"docs/api.markdown":   "c",
		"docs/notes.txt":      "d",
		"vendor/lib/x.md":     "e",
		".hidden/secret.md":   "f",
		"docs/.draft.md":      "g",
		"docs/deep/nested.md": "h",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "defaults to working directory",
			opts: runner.Options{},
			want: []string{"docs/api.markdown", "docs/deep/nested.md", "docs/guide.md", "readme.md", "vendor/lib/x.md"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".TXT"}},
			want: []string{"docs/notes.txt"},
		},
		{
			name: "exclude directory glob",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**"}},
			want: []string{"docs/api.markdown", "docs/deep/nested.md", "docs/guide.md", "readme.md"},
		},
		{
			name: "exclude by base name",
			opts: runner.Options{ExcludeGlobs: []string{"*.markdown", "**/nested.md"}},
			want: []string{"docs/guide.md", "readme.md", "vendor/lib/x.md"},
		},
		{
			name: "include globs",
			opts: runner.Options{IncludeGlobs: []string{"docs/**"}},
			want: []string{"docs/api.markdown", "docs/deep/nested.md", "docs/guide.md"},
		},
		{
			name: "explicit file and overlapping directory deduplicated",
			opts: runner.Options{Paths: []string{"docs/guide.md", "docs", "docs/notes.txt"}},
			want: []string{"docs/api.markdown", "docs/deep/nested.md", "docs/guide.md", "docs/notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := tree(t, files)
			opts := tt.opts
			opts.WorkingDir = dir

			got, err := runner.Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, abs(dir, tt.want...), got)
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Discover(context.Background(), runner.Options{
			Paths:      []string{"missing.md"},
			WorkingDir: t.TempDir(),
		})
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	outside := tree(t, map[string]string{"linked.md": "x"})
	dir := tree(t, map[string]string{"own.md": "y"})

	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "linked.md"), filepath.Join(dir, "file.md")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.md"), filepath.Join(dir, "broken.md")))

	got, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "file.md", "own.md"), got)

	got, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	want := append(abs(dir, "file.md", "own.md"), filepath.Join(outside, "linked.md"))
	slices.Sort(want)
	assert.Equal(t, want, got)
}

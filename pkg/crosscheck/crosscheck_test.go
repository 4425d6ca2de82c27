package crosscheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/crosscheck"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/parser"
)

func parse(t *testing.T, src string) *mdast.Node {
	t.Helper()

	root, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return root
}

func TestCompare_Agrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		outline []string
	}{
		{
			name:    "mixed blocks",
			src:     "# a\n\npara\n\n- x\n- y\n\n> q\n",
			outline: []string{"heading-1", "paragraph", "unordered-list", "blockquote"},
		},
		{
			name:    "setext heading",
			src:     "a\n---\n",
			outline: []string{"heading-2"},
		},
		{
			name:    "fence after break",
			src:     "***\n\n```\nx\n```\n",
			outline: []string{"thematic-break", "fenced-code-block"},
		},
		{
			name:    "link definition only paragraph",
			src:     "[a]: /u\n\n[a]\n",
			outline: []string{"paragraph"},
		},
		{
			name:    "link definition before heading",
			src:     "[a]: /u\n\n# T\n",
			outline: []string{"heading-1"},
		},
		{
			name:    "setext underline left of paragraph text",
			src:     "  Foo\n===\n",
			outline: []string{"heading-1"},
		},
		{
			name:    "empty",
			src:     "",
			outline: nil,
		},
	}

	checker := crosscheck.New()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(testCase.src)
			root := parse(t, testCase.src)

			assert.Equal(t, testCase.outline, crosscheck.TreeOutline(root))
			assert.Equal(t, testCase.outline, checker.Outline(src))
			assert.Empty(t, checker.Compare(src, root))
		})
	}
}

func TestCompare_Mismatches(t *testing.T) {
	t.Parallel()

	t.Run("different kind", func(t *testing.T) {
		t.Parallel()

		got := crosscheck.Compare([]byte("# a"), parse(t, "a"))
		assert.Equal(t, []crosscheck.Mismatch{{Index: 0, Want: "heading-1", Got: "paragraph"}}, got)
	})

	t.Run("missing block", func(t *testing.T) {
		t.Parallel()

		got := crosscheck.Compare([]byte("a\n\nb"), parse(t, "a"))
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Index)
		assert.Empty(t, got[0].Got)
		assert.Equal(t, "block 1: goldmark has paragraph, tree has <none>", got[0].String())
	})
}

func TestTreeOutline_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, crosscheck.TreeOutline(nil))
}

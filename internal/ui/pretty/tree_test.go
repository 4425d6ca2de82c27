package pretty_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/parser"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	snapshot, err := parser.ParseFile(context.Background(), "doc.md", []byte("# a\n```go\nx\n```\n"))
	require.NoError(t, err)

	styles := pretty.NewStyles(false)

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, styles.FormatTree(&buf, snapshot, pretty.TreeOptions{}))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "markdown-file", lines[0])
		assert.Equal(t, "  atx-1", lines[1])
		assert.NotContains(t, buf.String(), "lang=")
	})

	t.Run("positions and languages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, styles.FormatTree(&buf, snapshot, pretty.TreeOptions{Positions: true, Languages: true}))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "markdown-file [0,16) 1:1-5:1", lines[0])
		assert.Equal(t, "  atx-1 [0,3) 1:1-1:4", lines[1])
		assert.Contains(t, buf.String(), "fenced-code-block [4,15) 2:1-4:4 lang=go (info)")
	})
}

func TestFormatTree_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, pretty.NewStyles(false).FormatTree(&buf, nil, pretty.TreeOptions{}))
	assert.Empty(t, buf.String())
}

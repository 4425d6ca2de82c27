package mdast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

func TestDumpString(t *testing.T) {
	t.Parallel()

	doc, content := buildTestTree()

	want := strings.Join([]string{
		"markdown-file",
		"  atx-1",
		"    atx-marker('#')",
		"    whitespace(' ')",
		"    text('a')",
		`  eol('\n')`,
		"  paragraph",
		"    emphasis",
		"      emphasis-marker('*')",
		"      text('b')",
		"      emphasis-marker('*')",
	}, "\n")

	assert.Equal(t, want, mdast.DumpString(doc, content))
}

func TestDump_Options(t *testing.T) {
	t.Parallel()

	doc, content := buildTestTree()

	var sb strings.Builder
	err := mdast.Dump(&sb, doc.FirstChild, content, mdast.DumpOptions{
		Positions: true,
		Style:     func(_ mdast.Kind, name string) string { return strings.ToUpper(name) },
		Annotate: func(n *mdast.Node) string {
			if n.Kind.IsHeading() {
				return "level=1"
			}
			return ""
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ATX-1 [0,3) level=1", lines[0])
	assert.Equal(t, "  ATX-MARKER('#') [0,1)", lines[1])
}

func TestDump_Truncate(t *testing.T) {
	t.Parallel()

	content := []byte("abcdefghij")
	leaf := mdast.NewLeaf(mdast.Token{Kind: mdast.TokText, Start: 0, End: 10})

	var sb strings.Builder
	require.NoError(t, mdast.Dump(&sb, leaf, content, mdast.DumpOptions{Truncate: 5}))

	assert.Equal(t, "text('abcd…')\n", sb.String())
}

func TestToValue(t *testing.T) {
	t.Parallel()

	doc, content := buildTestTree()

	value := mdast.ToValue(doc, content, nil)

	assert.Equal(t, "markdown-file", value.Kind)
	require.Len(t, value.Children, 3)
	assert.Equal(t, "eol", value.Children[1].Kind)
	assert.Equal(t, "\n", value.Children[1].Text)
	assert.Empty(t, value.Children[2].Text)
	assert.Equal(t, 4, value.Children[2].Start)
}

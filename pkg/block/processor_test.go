package block_test

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/block"
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/lexer"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// runBlocks processes src and renders every block production as
// "kind text", outermost first.
func runBlocks(t *testing.T, src string) []string {
	t.Helper()

	content := []byte(src)
	cache := tokens.NewCache(content, lexer.Tokenize(content))
	holder := production.NewHolder()

	proc := block.NewProcessor(cache, holder, block.CommonMark{}, block.Options{})
	require.NoError(t, proc.Run())
	assert.Zero(t, proc.StackDepth())

	type indexed struct {
		production.Node
		order int
	}

	var nodes []indexed
	for i, n := range holder.Nodes() {
		if n.Kind.IsBlock() {
			nodes = append(nodes, indexed{Node: n, order: i})
		}
	}

	// Equal ranges: the block closed last is the outer one.
	slices.SortFunc(nodes, func(a, b indexed) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(b.End, a.End); c != 0 {
			return c
		}
		return cmp.Compare(b.order, a.order)
	})

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		start := cache.Filtered(n.Start).Start
		end := cache.Filtered(n.End - 1).End
		out = append(out, n.Kind.String()+" "+string(content[start:end]))
	}
	return out
}

func TestProcessor_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "lazy paragraph",
			src:  "a\nb",
			want: []string{"paragraph a\nb"},
		},
		{
			name: "blank line splits paragraphs",
			src:  "a\n\nb",
			want: []string{"paragraph a", "paragraph b"},
		},
		{
			name: "thematic break closes paragraph",
			src:  "a\n***\nb",
			want: []string{"paragraph a", "paragraph b"},
		},
		{
			name: "atx heading",
			src:  "# a",
			want: []string{"atx-1 # a"},
		},
		{
			name: "atx heading then paragraph",
			src:  "# a\nb",
			want: []string{"atx-1 # a", "paragraph b"},
		},
		{
			name: "setext heading",
			src:  "a\n===",
			want: []string{"setext-1 a\n==="},
		},
		{
			name: "blockquote continued by marker",
			src:  "> a\n> b",
			want: []string{"blockquote > a\n> b", "paragraph a\n> b"},
		},
		{
			name: "blockquote lazy continuation",
			src:  "> a\nb",
			want: []string{"blockquote > a\nb", "paragraph a\nb"},
		},
		{
			name: "blank line ends blockquote",
			src:  "> a\n\nb",
			want: []string{"blockquote > a", "paragraph a", "paragraph b"},
		},
		{
			name: "sibling list items",
			src:  "- a\n- b",
			want: []string{
				"unordered-list - a\n- b",
				"list-item - a",
				"paragraph a",
				"list-item - b",
				"paragraph b",
			},
		},
		{
			name: "nested list",
			src:  "- a\n  - b",
			want: []string{
				"unordered-list - a\n  - b",
				"list-item - a\n  - b",
				"paragraph a",
				"unordered-list - b",
				"list-item - b",
				"paragraph b",
			},
		},
		{
			name: "indented code",
			src:  "    a\nb",
			want: []string{"indented-code-block a", "paragraph b"},
		},
		{
			name: "fenced code",
			src:  "```go\nx\n```\ny",
			want: []string{"fenced-code-block ```go\nx\n```", "paragraph y"},
		},
		{
			name: "fence interrupts paragraph",
			src:  "a\n```\nb\n```",
			want: []string{"paragraph a", "fenced-code-block ```\nb\n```"},
		},
		{
			name: "list marker interrupts paragraph",
			src:  "a\n- b",
			want: []string{"paragraph a", "unordered-list - b", "list-item - b", "paragraph b"},
		},
		{
			name: "atx heading interrupts paragraph",
			src:  "a\n# b",
			want: []string{"paragraph a", "atx-1 # b"},
		},
		{
			name: "blockquote marker interrupts paragraph",
			src:  "a\n> b",
			want: []string{"paragraph a", "blockquote > b", "paragraph b"},
		},
		{
			name: "block html interrupts paragraph",
			src:  "a\n<div>",
			want: []string{"paragraph a"},
		},
		{
			name: "inline html continues paragraph",
			src:  "a\n<span>",
			want: []string{"paragraph a\n<span>"},
		},
		{
			name: "deep blockquote glyph continues paragraph",
			src:  "a\n    > b",
			want: []string{"paragraph a\n    > b"},
		},
		{
			name: "deep list marker continues paragraph",
			src:  "a\n    - b",
			want: []string{"paragraph a\n    - b"},
		},
		{
			name: "glyph past the container indent stays in indented paragraph",
			src:  " a\n    > b",
			want: []string{"paragraph a\n    > b"},
		},
		{
			name: "one blank line keeps list",
			src:  "- a\n\n- b",
			want: []string{
				"unordered-list - a\n\n- b",
				"list-item - a",
				"paragraph a",
				"list-item - b",
				"paragraph b",
			},
		},
		{
			name: "two blank lines end list",
			src:  "- a\n\n\n- b",
			want: []string{
				"unordered-list - a",
				"list-item - a",
				"paragraph a",
				"unordered-list - b",
				"list-item - b",
				"paragraph b",
			},
		},
		{
			name: "indented code across blockquote glyphs",
			src:  ">     a\n>     b",
			want: []string{"blockquote >     a\n>     b", "indented-code-block a\n>     b"},
		},
		{
			name: "setext heading inside blockquote",
			src:  "> a\n> ---",
			want: []string{"blockquote > a\n> ---", "setext-2 a\n> ---"},
		},
		{
			name: "setext underline left of indented paragraph",
			src:  "  Foo\n===",
			want: []string{"setext-1 Foo\n==="},
		},
		{
			name: "setext underline after indented first line",
			src:  " Foo\nbar\n---",
			want: []string{"setext-2 Foo\nbar\n---"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, runBlocks(t, testCase.src))
		})
	}
}

func TestProcessor_InlineProductions(t *testing.T) {
	t.Parallel()

	content := []byte("# *a*")
	cache := tokens.NewCache(content, lexer.Tokenize(content))
	holder := production.NewHolder()

	require.NoError(t, block.NewProcessor(cache, holder, block.CommonMark{}, block.Options{}).Run())

	var kinds []string
	for _, n := range holder.Nodes() {
		kinds = append(kinds, n.Kind.String())
	}
	assert.Equal(t, []string{"emphasis", "atx-1"}, kinds)
}

func TestProcessor_NestingLimit(t *testing.T) {
	t.Parallel()

	content := []byte(strings.Repeat("> ", 10) + "a")
	cache := tokens.NewCache(content, lexer.Tokenize(content))

	proc := block.NewProcessor(cache, production.NewHolder(), block.CommonMark{}, block.Options{MaxNestingDepth: 5})
	err := proc.Run()

	require.ErrorIs(t, err, block.ErrNestingTooDeep)
	assert.Equal(t, 5, proc.StackDepth())
}

func TestCommonMark_Priority(t *testing.T) {
	t.Parallel()

	dialect := block.CommonMark{}
	content := []byte("# a")
	cache := tokens.NewCache(content, lexer.Tokenize(content))
	marker := production.NewHolder().Mark()

	atx := block.NewAtxHeader(constraints.Base, marker, 2)
	paragraph := block.NewParagraph(constraints.Base, marker)

	assert.Equal(t, 1, dialect.Priority(atx.Kind()))
	assert.Equal(t, 0, dialect.Priority(paragraph.Kind()))
	assert.Equal(t, []production.Range{{Start: 1, End: 2}}, atx.InlineRanges(cache, 2))
}

func TestProcessingResult_Postpone(t *testing.T) {
	t.Parallel()

	postponed := block.DefaultResult.Postpone()

	assert.True(t, postponed.Postponed)
	assert.False(t, block.DefaultResult.Postponed)
	assert.Equal(t, block.Done, postponed.Self)
	assert.Equal(t, "default", block.Default.String())
}

func TestFilterBlockquotes(t *testing.T) {
	t.Parallel()

	content := []byte("> a\n> b")
	cache := tokens.NewCache(content, lexer.Tokenize(content))

	// Filtered: '>' a EOL '>' b
	got := block.FilterBlockquotes(cache, production.Range{Start: 0, End: cache.Len()})
	assert.Equal(t, []production.Range{{Start: 1, End: 3}, {Start: 4, End: 5}}, got)
}

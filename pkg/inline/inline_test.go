package inline_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcst/pkg/inline"
	"github.com/yaklabco/mdcst/pkg/lexer"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// runInline parses src as one inline space and renders the productions as
// "kind text", outermost first. On equal spans the later production is the
// outer one, as in the tree builder.
func runInline(src string) []string {
	content := []byte(src)
	cache := tokens.NewCache(content, lexer.Tokenize(content))

	nodes := inline.CommonMark.Run(cache, []production.Range{{Start: 0, End: cache.Len()}})
	slices.Reverse(nodes)
	slices.SortStableFunc(nodes, func(a, b production.Node) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		start := cache.Filtered(n.Start).Start
		end := cache.Filtered(n.End - 1).End
		out = append(out, n.Kind.String()+" "+string(content[start:end]))
	}
	return out
}

func TestCommonMark_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"code span hides emphasis", "`*a*`", []string{"code-span `*a*`"}},
		{"double backtick span", "``a`b``", []string{"code-span ``a`b``"}},
		{"escaped opener", "\\`a`", []string{}},
		{"escaped closer", "`a\\`", []string{"code-span `a\\`"}},
		{"emphasis", "*a*", []string{"emphasis *a*"}},
		{"strong", "**a**", []string{"strong **a**"}},
		{"strong inside emphasis", "***a***", []string{"emphasis ***a***", "strong **a**"}},
		{"nested strong", "*a **b** c*", []string{"emphasis *a **b** c*", "strong **b**"}},
		{"uneven runs", "**a*", []string{"emphasis *a*"}},
		{"intraword underscore", "snake_case_var", []string{}},
		{"underscore before letter", "_a_b", []string{}},
		{"autolink", "x <https://a.b> y", []string{"autolink <https://a.b>"}},
		{
			name: "inline link",
			src:  `[text](dest "title")`,
			want: []string{
				`inline-link [text](dest "title")`,
				"link-text [text]",
				"link-destination dest",
				`link-title "title"`,
			},
		},
		{
			name: "emphasis inside link text",
			src:  "[*a*](b)",
			want: []string{"inline-link [*a*](b)", "link-text [*a*]", "emphasis *a*", "link-destination b"},
		},
		{
			name: "emphasis cannot cross link text",
			src:  "*[a*](b)",
			want: []string{"inline-link [a*](b)", "link-text [a*]", "link-destination b"},
		},
		{
			name: "empty destination",
			src:  "[a]()",
			want: []string{"inline-link [a]()", "link-text [a]"},
		},
		{
			name: "full reference",
			src:  "[a][b]",
			want: []string{"full-reference-link [a][b]", "link-text [a]", "link-label [b]"},
		},
		{
			name: "emphasis inside full reference text",
			src:  "[*a*][b]",
			want: []string{"full-reference-link [*a*][b]", "link-text [*a*]", "emphasis *a*", "link-label [b]"},
		},
		{
			name: "emphasis cannot pair text with label",
			src:  "[*][*]",
			want: []string{"full-reference-link [*][*]", "link-text [*]", "link-label [*]"},
		},
		{
			name: "emphasis cannot cross from text into label",
			src:  "see [a *b][c* d] now",
			want: []string{"full-reference-link [a *b][c* d]", "link-text [a *b]", "link-label [c* d]"},
		},
		{
			name: "short reference",
			src:  "[a]",
			want: []string{"short-reference-link [a]", "link-label [a]"},
		},
		{
			name: "definition with title",
			src:  `[a]: /url "t"`,
			want: []string{
				`link-definition [a]: /url "t"`,
				"link-label [a]",
				"link-destination /url",
				`link-title "t"`,
			},
		},
		{
			name: "definition without title",
			src:  "[a]: /url",
			want: []string{"link-definition [a]: /url", "link-label [a]", "link-destination /url"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, runInline(testCase.src))
		})
	}
}

func TestCommonMark_Order(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(inline.CommonMark))
	for _, pass := range inline.CommonMark {
		names = append(names, pass.Name())
	}

	assert.Equal(t, []string{
		"autolink", "backtick", "link-definition", "inline-link", "reference-link", "emphasis",
	}, names)
}

func TestSequence_EmptySpace(t *testing.T) {
	t.Parallel()

	content := []byte("a")
	cache := tokens.NewCache(content, lexer.Tokenize(content))

	assert.Empty(t, inline.CommonMark.Run(cache, nil))
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/lexer"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

func newCache(src string) *tokens.Cache {
	content := []byte(src)
	return tokens.NewCache(content, lexer.Tokenize(content))
}

func node(kind mdast.Kind, start, end int) production.Node {
	return production.Node{Range: production.Range{Start: start, End: end}, Kind: kind}
}

func TestBuildTree_FillsGaps(t *testing.T) {
	t.Parallel()

	// Filtered: a b c; raw: a ' ' b ' ' c
	cache := newCache("a b c")
	root := buildTree(cache, []production.Node{node(mdast.NodeParagraph, 1, 3)})

	require.NoError(t, Verify(root, cache.Source()))
	require.Equal(t, 3, root.ChildCount())

	children := root.Children()
	assert.Equal(t, mdast.TokText, children[0].Kind)
	assert.Equal(t, mdast.TokWhitespace, children[1].Kind)
	assert.Equal(t, mdast.NodeParagraph, children[2].Kind)
	assert.Equal(t, "b c", string(children[2].Text(cache.Source())))
}

func TestBuildTree_EqualSpans(t *testing.T) {
	t.Parallel()

	cache := newCache("a")
	root := buildTree(cache, []production.Node{
		node(mdast.NodeListItem, 0, 1),
		node(mdast.NodeUnorderedList, 0, 1),
	})

	list := root.FirstChild
	require.NotNil(t, list)
	assert.Equal(t, mdast.NodeUnorderedList, list.Kind)
	assert.Equal(t, mdast.NodeListItem, list.FirstChild.Kind)
}

func TestBuildTree_SkipsEmpty(t *testing.T) {
	t.Parallel()

	cache := newCache("a")
	root := buildTree(cache, []production.Node{node(mdast.NodeParagraph, 1, 1)})

	assert.Equal(t, 1, root.ChildCount())
	assert.True(t, root.FirstChild.IsLeaf())
}

func TestBuildTree_CrossingPanics(t *testing.T) {
	t.Parallel()

	cache := newCache("a b c")
	assert.Panics(t, func() {
		buildTree(cache, []production.Node{
			node(mdast.NodeParagraph, 0, 2),
			node(mdast.NodeEmph, 1, 3),
		})
	})
}

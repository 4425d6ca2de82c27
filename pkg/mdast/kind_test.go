package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

func TestKind_StringRoundTrip(t *testing.T) {
	t.Parallel()

	kinds := []mdast.Kind{
		mdast.TokText, mdast.TokEOL, mdast.TokBlockQuote, mdast.TokAutolink,
		mdast.NodeFile, mdast.NodeParagraph, mdast.NodeAtx3, mdast.NodeCodeFence,
		mdast.NodeInlineLink, mdast.NodeShortReferenceLink,
	}

	for _, kind := range kinds {
		got, ok := mdast.ParseKind(kind.String())
		assert.True(t, ok, kind.String())
		assert.Equal(t, kind, got)
	}

	_, ok := mdast.ParseKind("no-such-kind")
	assert.False(t, ok)
	assert.Equal(t, "unknown", mdast.Kind(999).String())
}

func TestKind_Classification(t *testing.T) {
	t.Parallel()

	assert.True(t, mdast.TokText.IsToken())
	assert.False(t, mdast.TokText.IsElement())
	assert.False(t, mdast.KindNone.IsToken())
	assert.True(t, mdast.NodeParagraph.IsElement())
	assert.True(t, mdast.NodeParagraph.IsBlock())
	assert.False(t, mdast.NodeParagraph.IsInline())
	assert.True(t, mdast.NodeEmph.IsInline())
	assert.True(t, mdast.NodeListItem.IsContainer())
	assert.False(t, mdast.NodeCodeBlock.IsContainer())
	assert.True(t, mdast.TokWhitespace.IsWhitespace())
	assert.False(t, mdast.TokEOL.IsWhitespace())
}

func TestKind_HeadingLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, mdast.NodeAtx1.HeadingLevel())
	assert.Equal(t, 6, mdast.NodeAtx6.HeadingLevel())
	assert.Equal(t, 2, mdast.NodeSetext2.HeadingLevel())
	assert.Equal(t, 0, mdast.NodeParagraph.HeadingLevel())
	assert.Equal(t, mdast.NodeAtx4, mdast.AtxKind(4))
	assert.Equal(t, mdast.NodeAtx6, mdast.AtxKind(9))
	assert.Equal(t, mdast.NodeAtx1, mdast.AtxKind(0))
	assert.True(t, mdast.NodeSetext1.IsHeading())
}

package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
)

func TestRange(t *testing.T) {
	t.Parallel()

	outer := production.Range{Start: 0, End: 10}
	inner := production.Range{Start: 2, End: 5}
	crossing := production.Range{Start: 4, End: 12}
	after := production.Range{Start: 10, End: 11}

	assert.Equal(t, 10, outer.Len())
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Nests(inner))
	assert.True(t, inner.Nests(outer))
	assert.True(t, outer.Nests(after))
	assert.False(t, inner.Nests(crossing))
	assert.True(t, production.Range{Start: 3, End: 3}.IsEmpty())
	assert.Equal(t, "[2,5)", inner.String())
}

func TestRangesToIndices(t *testing.T) {
	t.Parallel()

	ranges := []production.Range{{Start: 5, End: 7}, {Start: 0, End: 2}}
	assert.Equal(t, []int{0, 1, 5, 6}, production.RangesToIndices(ranges))
	assert.Empty(t, production.RangesToIndices(nil))
}

func TestIndicesToRanges(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]production.Range{{Start: 0, End: 2}, {Start: 5, End: 6}, {Start: 8, End: 10}},
		production.IndicesToRanges([]int{0, 1, 5, 8, 9}))
	assert.Empty(t, production.IndicesToRanges(nil))
}

func TestHolder_Marker(t *testing.T) {
	t.Parallel()

	holder := production.NewHolder()
	holder.UpdatePosition(3)
	marker := holder.Mark()
	holder.UpdatePosition(7)
	marker.Done(mdast.NodeParagraph)
	holder.Add(production.Node{Range: production.Range{Start: 0, End: 1}, Kind: mdast.NodeEmph})

	nodes := holder.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, 3, marker.Start())
	assert.Equal(t, production.Range{Start: 3, End: 7}, nodes[0].Range)
	assert.Equal(t, mdast.NodeParagraph, nodes[0].Kind)
	assert.Equal(t, 7, holder.Position())
}

package parser

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// span is a production mapped onto raw token indices, [start, end).
type span struct {
	kind  mdast.Kind
	start int
	end   int
	order int // position in the holder; later means outer on equal spans
}

func (s span) size() int { return s.end - s.start }

// event opens or closes a span at a raw position.
type event struct {
	pos   int
	open  bool
	index int // into spans
}

// accumulator collects the finished children of an open span.
type accumulator struct {
	span     span
	children []child
}

type child struct {
	node  *mdast.Node
	start int
	end   int
}

// buildTree turns flat productions into the tree. Raw tokens not claimed
// by any production become leaves of the innermost production covering
// them, so the leaves concatenate to the source.
func buildTree(cache *tokens.Cache, nodes []production.Node) *mdast.Node {
	spans := toSpans(cache, nodes)
	events := sortedEvents(spans)

	raw := cache.RawTokens()
	stack := []*accumulator{{span: span{kind: mdast.NodeFile, start: 0, end: len(raw)}}}

	for _, ev := range events {
		s := spans[ev.index]
		if ev.open {
			stack = append(stack, &accumulator{span: s})
			continue
		}

		top := stack[len(stack)-1]
		if top.span != s {
			panic(fmt.Sprintf("parser: %s %d..%d crosses %s %d..%d",
				s.kind, s.start, s.end, top.span.kind, top.span.start, top.span.end))
		}
		stack = stack[:len(stack)-1]

		parent := stack[len(stack)-1]
		parent.children = append(parent.children, child{node: top.finish(raw), start: s.start, end: s.end})
	}

	root := stack[0].finish(raw)
	if len(raw) == 0 {
		root.Start, root.End = 0, 0
	}
	return root
}

// toSpans maps filtered production ranges to raw index ranges. Empty
// productions are dropped.
func toSpans(cache *tokens.Cache, nodes []production.Node) []span {
	spans := make([]span, 0, len(nodes))
	for i, n := range nodes {
		if n.IsEmpty() {
			continue
		}
		spans = append(spans, span{
			kind:  n.Kind,
			start: cache.RawIndex(n.Start),
			end:   cache.RawIndex(n.End-1) + 1,
			order: i,
		})
	}
	return spans
}

// sortedEvents orders span boundaries so that co-located boundaries nest:
// closes come before opens at the same position, the larger span opens
// first and closes last.
func sortedEvents(spans []span) []event {
	events := make([]event, 0, 2*len(spans))
	for i, s := range spans {
		events = append(events, event{pos: s.start, open: true, index: i}, event{pos: s.end, open: false, index: i})
	}

	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		if a.open != b.open {
			if a.open {
				return 1
			}
			return -1
		}

		sa, sb := spans[a.index], spans[b.index]
		outer := cmp.Compare(sb.size(), sa.size())
		if outer == 0 {
			outer = cmp.Compare(sb.order, sa.order)
		}
		if a.open {
			return outer
		}
		return -outer
	})

	return events
}

// finish materializes the accumulated span, filling every raw token not
// covered by a child with a leaf.
func (a *accumulator) finish(raw []mdast.Token) *mdast.Node {
	n := mdast.NewNode(a.span.kind)

	pos := a.span.start
	for _, c := range a.children {
		for ; pos < c.start; pos++ {
			mdast.AppendChild(n, mdast.NewLeaf(raw[pos]))
		}
		mdast.AppendChild(n, c.node)
		pos = c.end
	}
	for ; pos < a.span.end; pos++ {
		mdast.AppendChild(n, mdast.NewLeaf(raw[pos]))
	}

	return n
}

package block

import (
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// listBlankLineLimit is the number of consecutive line ends (two blank
// lines) that ends a list.
const listBlankLineLimit = 3

// BlockQuote is a `>` container.
type BlockQuote struct {
	base
}

// NewBlockQuote opens a blockquote at the marker.
func NewBlockQuote(c constraints.Constraints, marker production.Marker) *BlockQuote {
	return &BlockQuote{base: newBase(c, marker, mdast.TokEOL)}
}

// Kind implements MarkerBlock.
func (q *BlockQuote) Kind() mdast.Kind { return mdast.NodeBlockQuote }

// DefaultAction implements MarkerBlock.
func (q *BlockQuote) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock.
func (q *BlockQuote) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if !constraints.FromBase(it, 1, q.constraints).ExtendsPrev(q.constraints) {
		return DefaultResult
	}
	return Pass
}

// List groups consecutive items that share a marker character.
type List struct {
	base

	ordered bool
}

// NewList opens a list at the marker. The marker kind picks ordered or
// unordered.
func NewList(c constraints.Constraints, marker production.Marker, markerKind mdast.Kind) *List {
	return &List{base: newBase(c, marker, mdast.TokEOL), ordered: markerKind == mdast.TokListNumber}
}

// Kind implements MarkerBlock.
func (l *List) Kind() mdast.Kind {
	if l.ordered {
		return mdast.NodeOrderedList
	}
	return mdast.NodeUnorderedList
}

// DefaultAction implements MarkerBlock.
func (l *List) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock. A new item marker of the same list
// keeps the list open.
func (l *List) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if consecutiveEOLs(it) >= listBlankLineLimit {
		return DefaultResult
	}

	eol := nonBlankLineEOLRawIndex(it)
	if !constraints.FromBase(it, eol+1, l.constraints).ExtendsList(l.constraints) {
		return DefaultResult
	}
	return Pass
}

// ListItem is one item of a list.
type ListItem struct {
	base
}

// NewListItem opens a list item at the marker.
func NewListItem(c constraints.Constraints, marker production.Marker) *ListItem {
	return &ListItem{base: newBase(c, marker, mdast.TokEOL)}
}

// Kind implements MarkerBlock.
func (i *ListItem) Kind() mdast.Kind { return mdast.NodeListItem }

// DefaultAction implements MarkerBlock.
func (i *ListItem) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock.
func (i *ListItem) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if consecutiveEOLs(it) >= listBlankLineLimit {
		return DefaultResult
	}

	eol := nonBlankLineEOLRawIndex(it)
	if !constraints.FromBase(it, eol+1, i.constraints).ExtendsPrev(i.constraints) {
		return DefaultResult
	}
	return Pass
}

package block

import (
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// AtxHeader is a `#` heading. It ends with its line.
type AtxHeader struct {
	base

	level int
}

// NewAtxHeader opens a heading of the given level at the marker, which
// must sit on the `#` run.
func NewAtxHeader(c constraints.Constraints, marker production.Marker, level int) *AtxHeader {
	return &AtxHeader{base: newBase(c, marker, mdast.TokEOL), level: level}
}

// Kind implements MarkerBlock.
func (h *AtxHeader) Kind() mdast.Kind { return mdast.AtxKind(h.level) }

// DefaultAction implements MarkerBlock.
func (h *AtxHeader) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock.
func (h *AtxHeader) ProcessToken(tokens.Iterator, constraints.Constraints) ProcessingResult {
	return ProcessingResult{Children: Drop, Self: Done, Event: Propagate}
}

// InlineRanges implements InlineHolder. The `#` run is not inline content.
func (h *AtxHeader) InlineRanges(_ *tokens.Cache, end int) []production.Range {
	r := production.Range{Start: h.marker.Start() + 1, End: end}
	if r.IsEmpty() {
		return nil
	}
	return []production.Range{r}
}

// SetextHeader shadows a paragraph opened at a line start. It stays silent
// unless an underline follows the paragraph, in which case it takes the
// paragraph's lines over and becomes a heading.
type SetextHeader struct {
	base

	kind mdast.Kind
}

// NewSetextHeader opens a setext candidate at the marker.
func NewSetextHeader(c constraints.Constraints, marker production.Marker) *SetextHeader {
	return &SetextHeader{
		base: newBase(c, marker, mdast.TokSetext1, mdast.TokSetext2),
		kind: mdast.NodeSetext1,
	}
}

// Kind implements MarkerBlock.
func (h *SetextHeader) Kind() mdast.Kind { return h.kind }

// DefaultAction implements MarkerBlock. A candidate that never saw its
// underline leaves no trace.
func (h *SetextHeader) DefaultAction() ClosingAction { return Drop }

// ProcessToken implements MarkerBlock.
func (h *SetextHeader) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if it.Kind() == mdast.TokSetext2 {
		h.kind = mdast.NodeSetext2
	} else {
		h.kind = mdast.NodeSetext1
	}

	// Applied on the next token so the underline is inside the heading.
	return DefaultResult.Postpone()
}

// InlineRanges implements InlineHolder. The underline, the line end before
// it and any blockquote markers are excluded.
func (h *SetextHeader) InlineRanges(cache *tokens.Cache, end int) []production.Range {
	ranges := FilterBlockquotes(cache, production.Range{Start: h.marker.Start(), End: end - 1})

	if n := len(ranges); n > 0 {
		last := &ranges[n-1]
		for !last.IsEmpty() && cache.Iterator(last.End-1).Kind() == mdast.TokEOL {
			last.End--
		}
		if last.IsEmpty() {
			ranges = ranges[:n-1]
		}
	}

	return ranges
}

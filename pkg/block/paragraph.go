package block

import (
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Paragraph is a run of text lines. It continues lazily onto any line that
// does not start another block.
type Paragraph struct {
	base
}

// NewParagraph opens a paragraph at the marker.
func NewParagraph(c constraints.Constraints, marker production.Marker) *Paragraph {
	return &Paragraph{base: newBase(c, marker, mdast.TokEOL)}
}

// Kind implements MarkerBlock.
func (p *Paragraph) Kind() mdast.Kind { return mdast.NodeParagraph }

// DefaultAction implements MarkerBlock.
func (p *Paragraph) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock.
func (p *Paragraph) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if consecutiveEOLs(it) >= 2 {
		return DefaultResult
	}

	line := constraints.FromBase(it, 1, p.constraints)

	next := it.Advance().Kind()
	if next == mdast.TokBlockQuote {
		if !line.UpstreamWith(p.constraints) {
			return DefaultResult
		}
		next = it.RawLookup(nextLineNonQuoteRawIndex(it))
	}

	switch next {
	case mdast.TokSetext1, mdast.TokSetext2:
		// The sibling setext header takes the lines over.
		return ProcessingResult{Children: Nothing, Self: Drop, Event: Propagate}
	case mdast.KindNone, mdast.TokEOL:
		return DefaultResult
	case mdast.TokHorizontalRule, mdast.TokCodeFenceStart,
		mdast.TokListBullet, mdast.TokListNumber, mdast.TokAtxHeader,
		mdast.TokBlockQuote, mdast.TokHTMLBlock:
		// Four columns past the line's containers it is continuation text.
		if indentBeforeRawToken(it, nextLineNonQuoteRawIndex(it)) >= line.Indent()+codeIndent {
			return CancelResult
		}
		return DefaultResult
	default:
		return CancelResult
	}
}

// InlineRanges implements InlineHolder.
func (p *Paragraph) InlineRanges(cache *tokens.Cache, end int) []production.Range {
	return FilterBlockquotes(cache, production.Range{Start: p.marker.Start(), End: end})
}

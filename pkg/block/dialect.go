package block

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Dialect decides which blocks a token opens and in which order open
// blocks see tokens.
type Dialect interface {
	// Priority ranks a block kind. Higher ranks see tokens first; equal
	// ranks go innermost first.
	Priority(kind mdast.Kind) int
	// CreateNewMarkerBlocks returns the blocks the token at it opens, in
	// push order.
	CreateNewMarkerBlocks(p *Processor, it tokens.Iterator) []MarkerBlock
}

// CommonMark is the block grammar of the CommonMark core: paragraphs,
// headings, blockquotes, lists, indented and fenced code.
type CommonMark struct{}

// Priority implements Dialect. ATX headings close before the blocks
// nested in them.
func (CommonMark) Priority(kind mdast.Kind) int {
	if kind >= mdast.NodeAtx1 && kind <= mdast.NodeAtx6 {
		return 1
	}
	return 0
}

// CreateNewMarkerBlocks implements Dialect.
func (CommonMark) CreateNewMarkerBlocks(p *Processor, it tokens.Iterator) []MarkerBlock {
	kind := it.Kind()

	switch kind {
	case mdast.TokEOL, mdast.TokHorizontalRule, mdast.TokSetext1, mdast.TokSetext2, mdast.TokHTMLBlock:
		return nil
	}

	// The rest of a heading line is the heading's inline content.
	if _, ok := p.LastBlock().(*AtxHeader); ok {
		return nil
	}

	// A paragraph that kept the line owns every token on it, container
	// markers included.
	if p.HasParagraph() {
		return nil
	}

	holder := p.Holder()
	c := p.CurrentConstraints().AddModifierIfNeeded(it)

	switch {
	case indentBeforeRawToken(it, 0) >= c.Indent()+codeIndent:
		return []MarkerBlock{NewCodeBlock(c, holder.Mark())}
	case kind == mdast.TokBlockQuote:
		return []MarkerBlock{NewBlockQuote(c, holder.Mark())}
	case kind == mdast.TokListBullet || kind == mdast.TokListNumber:
		if _, ok := p.LastBlock().(*List); ok {
			return []MarkerBlock{NewListItem(c, holder.Mark())}
		}
		return []MarkerBlock{NewList(c, holder.Mark(), kind), NewListItem(c, holder.Mark())}
	case kind == mdast.TokAtxHeader:
		return []MarkerBlock{NewAtxHeader(c, holder.Mark(), len(it.Text()))}
	case kind == mdast.TokCodeFenceStart:
		return []MarkerBlock{NewCodeFence(c, holder.Mark())}
	}

	blocks := []MarkerBlock{NewParagraph(c, holder.Mark())}
	if isAtLineStart(it) {
		blocks = append(blocks, NewSetextHeader(c, holder.Mark()))
	}
	return blocks
}

package block

import (
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// codeIndent is the extra indentation of an indented code line.
const codeIndent = 4

// CodeBlock is an indented code block. It swallows every token of its
// lines.
type CodeBlock struct {
	base
}

// NewCodeBlock opens an indented code block at the marker.
func NewCodeBlock(c constraints.Constraints, marker production.Marker) *CodeBlock {
	return &CodeBlock{base: newBase(c, marker)}
}

// Kind implements MarkerBlock.
func (b *CodeBlock) Kind() mdast.Kind { return mdast.NodeCodeBlock }

// DefaultAction implements MarkerBlock.
func (b *CodeBlock) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock. Blank lines stay inside the block.
func (b *CodeBlock) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	if it.Kind() != mdast.TokEOL {
		return CancelResult
	}

	var nonWhitespace int

	next := it.Advance().Kind()
	if next == mdast.TokBlockQuote {
		nextLine := constraints.FromBase(it, 1, b.constraints)
		if !nextLine.UpstreamWith(b.constraints) || !nextLine.ExtendsPrev(b.constraints) {
			return DefaultResult
		}
		nonWhitespace = nextLineNonQuoteRawIndex(it)
		next = it.RawLookup(nonWhitespace)
	} else {
		nonWhitespace = firstNonWhitespaceRawIndex(it)
	}

	if next == mdast.TokEOL {
		return CancelResult
	}

	if it.RawStart(nonWhitespace)-it.RawStart(1) < b.constraints.Indent()+codeIndent {
		return DefaultResult
	}
	return CancelResult
}

// CodeFence is a fenced code block. Its content is never reprocessed.
type CodeFence struct {
	base
}

// NewCodeFence opens a fenced code block at the marker.
func NewCodeFence(c constraints.Constraints, marker production.Marker) *CodeFence {
	return &CodeFence{base: newBase(c, marker)}
}

// Kind implements MarkerBlock.
func (f *CodeFence) Kind() mdast.Kind { return mdast.NodeCodeFence }

// DefaultAction implements MarkerBlock.
func (f *CodeFence) DefaultAction() ClosingAction { return Done }

// ProcessToken implements MarkerBlock. Line ends pass through so the
// containers around the fence keep tracking lines.
func (f *CodeFence) ProcessToken(it tokens.Iterator, _ constraints.Constraints) ProcessingResult {
	switch it.Kind() {
	case mdast.TokCodeFenceEnd:
		return ProcessingResult{Children: Default, Self: Done, Event: Cancel}.Postpone()
	case mdast.TokEOL:
		if it.Advance().Kind() == mdast.KindNone {
			return DefaultResult
		}
		eol := nonBlankLineEOLRawIndex(it)
		if !constraints.FromBase(it, eol+1, f.constraints).ExtendsPrev(f.constraints) {
			return DefaultResult
		}
		return Pass
	default:
		return CancelResult
	}
}

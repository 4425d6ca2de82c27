package constraints

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// FromBase computes the constraints of the line whose first raw token is
// rawIndex steps from it, using prev (the constraints of the previous line)
// to fill implicit list levels covered by indentation.
func FromBase(it tokens.Iterator, rawIndex int, prev Constraints) Constraints {
	lineStart := it.RawStart(rawIndex)

	result := Base
	aligned := true

	for offset := rawIndex; ; offset++ {
		kind := it.RawLookup(offset)
		if kind != mdast.TokWhitespace && !IsConstraintKind(kind) {
			break
		}

		// Indentation this deep starts a code block.
		if it.RawStart(offset)-lineStart >= result.Indent()+codeIndent {
			break
		}

		if kind == mdast.TokWhitespace {
			if aligned {
				result = result.FillImplicitsOnWhitespace(it, offset, prev)
			}
			continue
		}

		next := result.AddModifier(kind, it, offset)
		aligned = prev.StartsWith(next)
		result = next
	}

	return result
}

// FillImplicitsOnWhitespace extends c with the list levels of prev that the
// whitespace token rawIndex steps from it is wide enough to cover.
func (c Constraints) FillImplicitsOnWhitespace(it tokens.Iterator, rawIndex int, prev Constraints) Constraints {
	width := it.RawStart(rawIndex+1) - it.RawStart(rawIndex)

	result := c
	eaten := 0
	if c.LastChar() == QuoteChar {
		eaten++
	}

	for i := c.Len(); i < prev.Len(); i++ {
		if prev.chars[i] == QuoteChar {
			break
		}

		delta := prev.indents[i]
		if i > 0 {
			delta -= prev.indents[i-1]
		}
		if eaten+delta > width {
			break
		}

		eaten += delta
		result = result.with(result.Indent()+delta, prev.chars[i], false)
	}

	return result
}

// AddModifierIfNeeded adds a level when the iterator's token is a container
// marker and returns c unchanged otherwise.
func (c Constraints) AddModifierIfNeeded(it tokens.Iterator) Constraints {
	if !IsConstraintKind(it.Kind()) {
		return c
	}
	return c.AddModifier(it.Kind(), it, 0)
}

// AddModifier adds the level opened by the marker token rawOffset steps
// from it. It panics when kind is not a container marker.
func (c Constraints) AddModifier(kind mdast.Kind, it tokens.Iterator, rawOffset int) Constraints {
	lineStart := lineStartOffset(it, rawOffset)
	current := c.Indent()
	whitespaceBefore := max(0, it.RawStart(rawOffset)-lineStart-current)

	switch kind {
	case mdast.TokListBullet, mdast.TokListNumber:
		return c.with(current+whitespaceBefore+listIndentAddition(it, rawOffset), modifierChar(it, rawOffset), true)
	case mdast.TokBlockQuote:
		return c.with(current+whitespaceBefore+quoteIndentStep, QuoteChar, true)
	default:
		panic("constraints: modifier must be a list marker or a blockquote marker, got " + kind.String())
	}
}

// lineStartOffset returns the offset of the start of the line containing the
// raw token rawOffset steps from it.
func lineStartOffset(it tokens.Iterator, rawOffset int) int {
	for index := rawOffset - 1; ; index-- {
		switch it.RawLookup(index) {
		case mdast.KindNone:
			return 0
		case mdast.TokEOL:
			return it.RawStart(index + 1)
		}
	}
}

// modifierChar returns the level character for a marker token.
func modifierChar(it tokens.Iterator, rawOffset int) byte {
	text := it.RawText(rawOffset)
	if it.RawLookup(rawOffset) == mdast.TokListNumber {
		return text[len(text)-1]
	}
	return text[0]
}

// listIndentAddition returns the marker width plus the whitespace that
// belongs to the item: none when no whitespace follows, one column when
// four or more follow, the full width otherwise.
func listIndentAddition(it tokens.Iterator, rawOffset int) int {
	width := it.RawStart(rawOffset+1) - it.RawStart(rawOffset)
	if it.RawLookup(rawOffset+1) != mdast.TokWhitespace {
		return width
	}

	after := it.RawStart(rawOffset+2) - it.RawStart(rawOffset+1)
	if after >= codeIndent {
		return width + 1
	}
	return width + after
}

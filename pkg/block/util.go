package block

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// consecutiveEOLs counts the line ends starting at it. Whitespace between
// them is filtered out, so blank lines holding spaces count.
func consecutiveEOLs(it tokens.Iterator) int {
	count := 0
	for it.Kind() == mdast.TokEOL {
		count++
		it = it.Advance()
	}
	return count
}

// nextLineNonQuoteRawIndex returns the raw offset of the first token of the
// next line that is neither whitespace nor a blockquote marker. it must be
// at a line end.
func nextLineNonQuoteRawIndex(it tokens.Iterator) int {
	index := 1
	for {
		kind := it.RawLookup(index)
		if kind != mdast.TokWhitespace && kind != mdast.TokBlockQuote {
			return index
		}
		index++
	}
}

// firstNonWhitespaceRawIndex returns the raw offset of the first token from
// it on that is neither whitespace nor a line end.
func firstNonWhitespaceRawIndex(it tokens.Iterator) int {
	index := 0
	for {
		kind := it.RawLookup(index)
		if kind != mdast.TokWhitespace && kind != mdast.TokEOL {
			return index
		}
		index++
	}
}

// nonBlankLineEOLRawIndex returns the raw offset of the line end that
// precedes the next non-blank line. it must be at a line end.
func nonBlankLineEOLRawIndex(it tokens.Iterator) int {
	last := firstNonWhitespaceRawIndex(it)
	for index := last - 1; index >= 0; index-- {
		if it.RawLookup(index) == mdast.TokEOL {
			return index
		}
	}
	panic("block: iterator is not at a line end")
}

// indentBeforeRawToken returns the column of the raw token rawOffset steps
// from it, counted from the start of its line.
func indentBeforeRawToken(it tokens.Iterator, rawOffset int) int {
	eol := rawOffset - 1
	for {
		kind := it.RawLookup(eol)
		if kind == mdast.TokEOL || kind == mdast.KindNone {
			break
		}
		eol--
	}
	return it.RawStart(rawOffset) - it.RawStart(eol+1)
}

// isAtLineStart reports whether only indentation and container markers
// precede it on its line.
func isAtLineStart(it tokens.Iterator) bool {
	for index := -1; ; index-- {
		switch it.RawLookup(index) {
		case mdast.KindNone, mdast.TokEOL:
			return true
		case mdast.TokWhitespace, mdast.TokBlockQuote, mdast.TokListBullet, mdast.TokListNumber:
			continue
		default:
			return false
		}
	}
}

// FilterBlockquotes splits r at blockquote markers, which belong to the
// enclosing quote rather than to the content.
func FilterBlockquotes(cache *tokens.Cache, r production.Range) []production.Range {
	var ranges []production.Range

	start := r.Start
	for i := r.Start; i < r.End; i++ {
		if cache.Iterator(i).Kind() != mdast.TokBlockQuote {
			continue
		}
		if i > start {
			ranges = append(ranges, production.Range{Start: start, End: i})
		}
		start = i + 1
	}
	if r.End > start {
		ranges = append(ranges, production.Range{Start: start, End: r.End})
	}

	return ranges
}

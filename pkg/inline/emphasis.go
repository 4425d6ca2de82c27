package inline

import (
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// MaxDelimiterRun is the longest emphasis delimiter run considered at once.
// Longer runs are split.
const MaxDelimiterRun = 4

// EmphStrong pairs emphasis delimiter runs into emphasis and strong nodes.
type EmphStrong struct{}

// Name implements Pass.
func (EmphStrong) Name() string { return "emphasis" }

// opener is an unmatched opening delimiter run: count markers starting at
// list position pos.
type opener struct {
	pos   int
	count int
	char  byte
}

// Parse implements Pass.
func (EmphStrong) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	var result Result

	indices := production.RangesToIndices(ranges)
	src := cache.Source()

	var openers []opener

	for i := 0; i < len(indices); {
		it := cache.ListIterator(indices, i)
		if it.Kind() != mdast.TokEmph {
			i++
			continue
		}

		char := it.Text()[0]
		length := delimiterRun(cache, indices, i, char)
		first := it
		last := cache.ListIterator(indices, i+length-1)

		cursor := i
		remaining := length

		if canClose(src, first, last, char) {
			for remaining > 0 {
				match := topOpener(openers, char)
				if match < 0 {
					break
				}
				// Openers above the match can no longer close inside it.
				openers = openers[:match+1]
				top := &openers[match]

				use := 1
				if top.count >= 2 && remaining >= 2 {
					use = 2
				}

				kind := mdast.NodeEmph
				if use == 2 {
					kind = mdast.NodeStrong
				}

				from := top.pos + top.count - use
				to := cursor + use - 1
				result.addNode(node(kind, indices[from], indices[to]+1))

				top.count -= use
				if top.count == 0 {
					openers = openers[:match]
				}
				cursor += use
				remaining -= use
			}
		}

		if remaining > 0 && canOpen(src, first, last, char) {
			openers = append(openers, opener{pos: cursor, count: remaining, char: char})
		}

		i += length
	}

	return result
}

// delimiterRun counts consecutive, raw-adjacent markers of char starting at
// list position start, up to MaxDelimiterRun.
func delimiterRun(cache *tokens.Cache, indices []int, start int, char byte) int {
	length := 1
	for start+length < len(indices) && length < MaxDelimiterRun {
		prev := indices[start+length-1]
		next := indices[start+length]
		if next != prev+1 || cache.RawIndex(next) != cache.RawIndex(prev)+1 {
			break
		}

		it := cache.Iterator(next)
		if it.Kind() != mdast.TokEmph || it.Text()[0] != char {
			break
		}
		length++
	}
	return length
}

// topOpener returns the stack position of the nearest opener of char, or -1.
func topOpener(openers []opener, char byte) int {
	for i := len(openers) - 1; i >= 0; i-- {
		if openers[i].char == char {
			return i
		}
	}
	return -1
}

// canOpen: the run is not followed by whitespace and, for '_', not preceded
// by an alphanumeric character.
func canOpen(src []byte, first, last tokens.ListIterator, char byte) bool {
	if isSpaceAround(last, 1) {
		return false
	}
	return char != '_' || !isAlnum(lastRune(src[:first.Start()]))
}

// canClose: the run is not preceded by whitespace and, for '_', not
// followed by an alphanumeric character.
func canClose(src []byte, first, last tokens.ListIterator, char byte) bool {
	if isSpaceAround(first, -1) {
		return false
	}
	return char != '_' || !isAlnum(firstRune(src[last.End():]))
}

// isSpaceAround treats the document boundaries as whitespace.
func isSpaceAround(it tokens.ListIterator, k int) bool {
	return IsWhitespaceAround(it, k) || it.RawLookup(k) == mdast.KindNone
}

func lastRune(b []byte) rune {
	r, _ := utf8.DecodeLastRune(b)
	return r
}

func firstRune(b []byte) rune {
	r, _ := utf8.DecodeRune(b)
	return r
}

func isAlnum(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

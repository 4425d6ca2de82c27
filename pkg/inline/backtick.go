package inline

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Backtick claims code spans: a backtick run and the next run of the same
// effective length. The interior is not handed on.
type Backtick struct{}

// Name implements Pass.
func (Backtick) Name() string { return "backtick" }

// Parse implements Pass.
func (Backtick) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	var (
		result   Result
		delegate []int
	)

	indices := production.RangesToIndices(ranges)

	for i := 0; i < len(indices); i++ {
		it := cache.ListIterator(indices, i)

		if isBacktickRun(it.Kind()) {
			if j := findRunOfLength(cache, indices, i+1, backtickLength(it.Iterator, true)); j >= 0 {
				result.addNode(node(mdast.NodeCodeSpan, indices[i], indices[j]+1))
				i = j
				continue
			}
		}

		delegate = append(delegate, indices[i])
	}

	result.addFurther(production.IndicesToRanges(delegate))
	return result
}

func isBacktickRun(kind mdast.Kind) bool {
	return kind == mdast.TokBacktick || kind == mdast.TokEscapedBackticks
}

// findRunOfLength returns the first list position at or after from holding
// a closing run of the given length, or -1.
func findRunOfLength(cache *tokens.Cache, indices []int, from, length int) int {
	for i := from; i < len(indices); i++ {
		it := cache.ListIterator(indices, i)
		if isBacktickRun(it.Kind()) && backtickLength(it.Iterator, false) == length {
			return i
		}
	}
	return -1
}

// backtickLength returns the effective length of a backtick run. An escaped
// opener loses its backslash and the escaped backtick; an escaped closer
// loses only the backslash.
func backtickLength(it tokens.Iterator, opening bool) int {
	length := len(it.Text())
	if it.Kind() != mdast.TokEscapedBackticks {
		return length
	}
	if opening {
		return length - 2
	}
	return length - 1
}

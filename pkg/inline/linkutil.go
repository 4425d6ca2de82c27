package inline

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Match accumulates the productions and the delegated interiors of one link
// attempt. Each bracket interior is its own space. A failed attempt discards
// it.
type Match struct {
	Nodes    []production.Node
	Delegate [][]int
}

func (m *Match) add(kind mdast.Kind, start, end int) {
	m.Nodes = append(m.Nodes, node(kind, start, end))
}

func (m *Match) delegate(interior []int) {
	if len(interior) > 0 {
		m.Delegate = append(m.Delegate, interior)
	}
}

// delegateTo hands every delegated interior to result as a separate space.
func (m *Match) delegateTo(result *Result) {
	for _, interior := range m.Delegate {
		result.addFurther(production.IndicesToRanges(interior))
	}
}

// IsWhitespaceAround reports whether the raw token k steps from it is
// whitespace or a line end.
func IsWhitespaceAround(it tokens.ListIterator, k int) bool {
	kind := it.RawLookup(k)
	return kind == mdast.TokWhitespace || kind == mdast.TokEOL
}

// ParseLinkDestination parses a bare or angle-bracketed destination starting
// at it. On success it returns the iterator at the destination's last token.
func ParseLinkDestination(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	if it.Kind() == mdast.TokEOL || it.Kind() == mdast.TokRParen || it.Kind() == mdast.KindNone {
		return it, false
	}

	start := it.Index()
	braced := it.Kind() == mdast.TokLT
	if braced {
		it = it.Advance()
	}

	openParen := false
	for it.Kind() != mdast.KindNone {
		if braced {
			if it.Kind() == mdast.TokGT {
				break
			}
			if it.Kind() == mdast.TokEOL {
				return it, false
			}
			it = it.Advance()
			continue
		}

		if it.Kind() == mdast.TokLParen {
			if openParen {
				break
			}
			openParen = true
		}

		next := it.RawLookup(1)
		if IsWhitespaceAround(it, 1) || next == mdast.KindNone {
			break
		}
		if next == mdast.TokRParen {
			if !openParen {
				break
			}
			openParen = false
		}

		it = it.Advance()
	}

	if it.Kind() == mdast.KindNone || openParen {
		return it, false
	}

	m.add(mdast.NodeLinkDestination, start, it.Index()+1)
	return it, true
}

// ParseLinkLabel parses `[label]` without nested brackets. An empty label
// fails. The interior is delegated.
func ParseLinkLabel(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	if it.Kind() != mdast.TokLBracket {
		return it, false
	}

	start := it.Index()
	var interior []int

	it = it.Advance()
	for it.Kind() != mdast.TokRBracket && it.Kind() != mdast.KindNone {
		if it.Kind() == mdast.TokLBracket {
			return it, false
		}
		interior = append(interior, it.Index())
		it = it.Advance()
	}

	if it.Kind() != mdast.TokRBracket || it.Index() == start+1 {
		return it, false
	}

	m.add(mdast.NodeLinkLabel, start, it.Index()+1)
	m.delegate(interior)
	return it, true
}

// ParseLinkText parses `[text]` with balanced nested brackets. The interior
// is delegated.
func ParseLinkText(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	if it.Kind() != mdast.TokLBracket {
		return it, false
	}

	start := it.Index()
	var interior []int

	depth := 1
	for it = it.Advance(); it.Kind() != mdast.KindNone; it = it.Advance() {
		if it.Kind() == mdast.TokRBracket {
			depth--
			if depth == 0 {
				break
			}
		}
		if it.Kind() == mdast.TokLBracket {
			depth++
		}
		interior = append(interior, it.Index())
	}

	if it.Kind() != mdast.TokRBracket {
		return it, false
	}

	m.add(mdast.NodeLinkText, start, it.Index()+1)
	m.delegate(interior)
	return it, true
}

// ParseLinkTitle parses a title delimited by '...', "..." or (...).
func ParseLinkTitle(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	var closing mdast.Kind

	switch it.Kind() {
	case mdast.TokSingleQuote, mdast.TokDoubleQuote:
		closing = it.Kind()
	case mdast.TokLParen:
		closing = mdast.TokRParen
	default:
		return it, false
	}

	start := it.Index()
	it = it.Advance()
	for it.Kind() != mdast.KindNone && it.Kind() != closing {
		it = it.Advance()
	}

	if it.Kind() == mdast.KindNone {
		return it, false
	}

	m.add(mdast.NodeLinkTitle, start, it.Index()+1)
	return it, true
}

// skipEOL steps over a single line end.
func skipEOL(it tokens.ListIterator) tokens.ListIterator {
	if it.Kind() == mdast.TokEOL {
		return it.Advance()
	}
	return it
}

// scanLinks runs parse at every '[' of the space. Matches become nodes and
// their delegated interiors become separate spaces; everything else is
// handed on as one space.
func scanLinks(cache *tokens.Cache, ranges []production.Range,
	parse func(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool),
) Result {
	var (
		result   Result
		delegate []int
	)

	indices := production.RangesToIndices(ranges)

	it := cache.ListIterator(indices, 0)
	for it.InList() {
		if it.Kind() == mdast.TokLBracket {
			var m Match
			if end, ok := parse(&m, it); ok {
				result.Nodes = append(result.Nodes, m.Nodes...)
				m.delegateTo(&result)
				it = end.Advance()
				continue
			}
		}

		delegate = append(delegate, it.Index())
		it = it.Advance()
	}

	result.addFurther(production.IndicesToRanges(delegate))
	return result
}

package inline

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// InlineLink claims `[text](destination "title")`.
type InlineLink struct{}

// Name implements Pass.
func (InlineLink) Name() string { return "inline-link" }

// Parse implements Pass.
func (InlineLink) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	return scanLinks(cache, ranges, parseInlineLink)
}

func parseInlineLink(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	start := it.Index()

	it, ok := ParseLinkText(m, it)
	if !ok || it.RawLookup(1) != mdast.TokLParen {
		return it, false
	}

	it = skipEOL(it.Advance().Advance())

	if end, ok := ParseLinkDestination(m, it); ok {
		it = skipEOL(end.Advance())
	}
	if end, ok := ParseLinkTitle(m, it); ok {
		it = skipEOL(end.Advance())
	}

	if it.Kind() != mdast.TokRParen {
		return it, false
	}

	m.add(mdast.NodeInlineLink, start, it.Index()+1)
	return it, true
}

// ReferenceLink claims full `[text][label]` and short `[label]` or
// `[label][]` reference links.
type ReferenceLink struct{}

// Name implements Pass.
func (ReferenceLink) Name() string { return "reference-link" }

// Parse implements Pass.
func (ReferenceLink) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	return scanLinks(cache, ranges, parseReferenceLink)
}

func parseReferenceLink(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	var full Match
	if end, ok := parseFullReferenceLink(&full, it); ok {
		*m = full
		return end, true
	}

	var short Match
	if end, ok := parseShortReferenceLink(&short, it); ok {
		*m = short
		return end, true
	}

	return it, false
}

func parseFullReferenceLink(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	start := it.Index()

	it, ok := ParseLinkText(m, it)
	if !ok {
		return it, false
	}

	it, ok = ParseLinkLabel(m, skipEOL(it.Advance()))
	if !ok {
		return it, false
	}

	m.add(mdast.NodeFullReferenceLink, start, it.Index()+1)
	return it, true
}

func parseShortReferenceLink(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	start := it.Index()

	it, ok := ParseLinkLabel(m, it)
	if !ok {
		return it, false
	}

	end := it
	next := skipEOL(it.Advance())
	if next.Kind() == mdast.TokLBracket && next.RawLookup(1) == mdast.TokRBracket {
		end = next.Advance()
	}

	m.add(mdast.NodeShortReferenceLink, start, end.Index()+1)
	return end, true
}

// LinkDefinition claims `[label]: destination "title"` at the start of a
// block. The title is optional; the definition must end its line.
type LinkDefinition struct{}

// Name implements Pass.
func (LinkDefinition) Name() string { return "link-definition" }

// Parse implements Pass.
func (LinkDefinition) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	var result Result

	indices := production.RangesToIndices(ranges)

	var m Match
	end, ok := parseLinkDefinition(&m, cache.ListIterator(indices, 0))
	if !ok {
		result.addFurther(ranges)
		return result
	}

	result.Nodes = m.Nodes
	m.delegateTo(&result)
	result.addFurther(production.IndicesToRanges(indices[end.ListPos()+1:]))
	return result
}

func parseLinkDefinition(m *Match, it tokens.ListIterator) (tokens.ListIterator, bool) {
	start := it.Index()

	it, ok := ParseLinkLabel(m, it)
	if !ok || it.RawLookup(1) != mdast.TokColon {
		return it, false
	}

	it, ok = ParseLinkDestination(m, skipEOL(it.Advance().Advance()))
	if !ok {
		return it, false
	}

	var title Match
	if end, ok := ParseLinkTitle(&title, skipEOL(it.Advance())); ok && endsLine(end) {
		m.Nodes = append(m.Nodes, title.Nodes...)
		it = end
	} else if !endsLine(it) {
		return it, false
	}

	m.add(mdast.NodeLinkDefinition, start, it.Index()+1)
	return it, true
}

// endsLine reports whether the token after it is a line end or the end of
// the space.
func endsLine(it tokens.ListIterator) bool {
	next := it.Advance().Kind()
	return next == mdast.TokEOL || next == mdast.KindNone
}

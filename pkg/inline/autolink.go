package inline

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Autolink claims `<` autolink-uri `>` and `<` email-autolink `>`.
type Autolink struct{}

// Name implements Pass.
func (Autolink) Name() string { return "autolink" }

// Parse implements Pass.
func (Autolink) Parse(cache *tokens.Cache, ranges []production.Range) Result {
	var (
		result   Result
		delegate []int
	)

	indices := production.RangesToIndices(ranges)

	for i := 0; i < len(indices); i++ {
		it := cache.ListIterator(indices, i)

		if it.Kind() == mdast.TokLT && isAutolinkBody(it.RawLookup(1)) && it.RawLookup(2) == mdast.TokGT {
			end := it.Advance().Advance()
			if end.Kind() == mdast.TokGT && end.Index() == it.Index()+2 {
				result.addNode(node(mdast.NodeAutolink, indices[i], end.Index()+1))
				i += 2
				continue
			}
		}

		delegate = append(delegate, indices[i])
	}

	result.addFurther(production.IndicesToRanges(delegate))
	return result
}

func isAutolinkBody(kind mdast.Kind) bool {
	return kind == mdast.TokAutolink || kind == mdast.TokEmailAutolink
}

func node(kind mdast.Kind, start, end int) production.Node {
	return production.Node{Range: production.Range{Start: start, End: end}, Kind: kind}
}

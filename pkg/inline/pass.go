// Package inline implements the inline delimiter pipeline: an ordered chain
// of passes over the filtered token ranges of inline-bearing blocks. Each
// pass claims the tokens it recognizes and hands the unclaimed ranges, and
// the interiors of what it claimed, to the passes after it.
package inline

import (
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// Result is the outcome of one pass over one space of ranges.
type Result struct {
	// Nodes are the finished productions.
	Nodes []production.Node
	// Further lists the spaces the next pass should process.
	Further [][]production.Range
}

func (r *Result) addNode(node production.Node) {
	r.Nodes = append(r.Nodes, node)
}

func (r *Result) addFurther(ranges []production.Range) {
	if len(ranges) > 0 {
		r.Further = append(r.Further, ranges)
	}
}

// Pass is one stage of the inline pipeline.
type Pass interface {
	Name() string
	Parse(cache *tokens.Cache, ranges []production.Range) Result
}

// Sequence is an ordered chain of passes.
type Sequence []Pass

// CommonMark is the default chain.
var CommonMark = Sequence{
	Autolink{},
	Backtick{},
	LinkDefinition{},
	InlineLink{},
	ReferenceLink{},
	EmphStrong{},
}

// Run feeds ranges through every pass in order and returns all productions.
func (s Sequence) Run(cache *tokens.Cache, ranges []production.Range) []production.Node {
	var nodes []production.Node

	spaces := [][]production.Range{ranges}
	for _, pass := range s {
		var next [][]production.Range
		for _, space := range spaces {
			result := pass.Parse(cache, space)
			nodes = append(nodes, result.Nodes...)
			next = append(next, result.Further...)
		}
		spaces = next
	}

	return nodes
}

// Package block implements the block engine: a stack of open marker blocks
// that consume the filtered token stream one token at a time and record a
// production for every block construct they close.
package block

import (
	"slices"

	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// MarkerBlock is an open block construct on the processor stack.
type MarkerBlock interface {
	// Kind returns the node kind the block materializes as.
	Kind() mdast.Kind
	// Constraints returns the container prefix the block was opened with.
	Constraints() constraints.Constraints
	// Marker returns the production marker opened with the block.
	Marker() production.Marker
	// InterestedIn reports whether ProcessToken wants tokens of kind.
	// Other tokens pass the block unchanged.
	InterestedIn(kind mdast.Kind) bool
	// ProcessToken answers one token.
	ProcessToken(it tokens.Iterator, current constraints.Constraints) ProcessingResult
	// DefaultAction is applied when the block is closed with Default.
	DefaultAction() ClosingAction
}

// InlineHolder is a block whose content is parsed by the inline passes when
// it is materialized.
type InlineHolder interface {
	MarkerBlock

	// InlineRanges returns the disjoint filtered ranges holding inline
	// content, given the position the block closes at.
	InlineRanges(cache *tokens.Cache, end int) []production.Range
}

// base carries the state shared by every block.
type base struct {
	constraints constraints.Constraints
	marker      production.Marker
	interests   []mdast.Kind // nil means every kind
}

func newBase(c constraints.Constraints, marker production.Marker, interests ...mdast.Kind) base {
	return base{constraints: c, marker: marker, interests: interests}
}

func (b *base) Constraints() constraints.Constraints { return b.constraints }

func (b *base) Marker() production.Marker { return b.marker }

func (b *base) InterestedIn(kind mdast.Kind) bool {
	return b.interests == nil || slices.Contains(b.interests, kind)
}

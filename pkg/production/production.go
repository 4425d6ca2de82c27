// Package production holds the intermediate output of the block engine and
// the inline passes: kind-labelled ranges over the filtered token stream,
// which the tree builder later turns into the concrete syntax tree.
package production

import (
	"fmt"
	"slices"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Range is a half-open range [Start, End) of filtered token indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return max(0, r.End-r.Start) }

// IsEmpty reports whether the range holds no index.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether other lies within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Nests reports whether r and other are nested or disjoint.
func (r Range) Nests(other Range) bool {
	return r.Contains(other) || other.Contains(r) || r.End <= other.Start || other.End <= r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Node is a production: a kind covering a range of filtered tokens.
type Node struct {
	Range

	Kind mdast.Kind
}

// RangesToIndices expands ranges into a sorted list of indices.
func RangesToIndices(ranges []Range) []int {
	var indices []int
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			indices = append(indices, i)
		}
	}
	slices.Sort(indices)
	return indices
}

// IndicesToRanges collapses a sorted index list into maximal ranges of
// consecutive indices.
func IndicesToRanges(indices []int) []Range {
	var ranges []Range

	start := 0
	for i := range indices {
		if i+1 == len(indices) || indices[i]+1 != indices[i+1] {
			ranges = append(ranges, Range{Start: indices[start], End: indices[i] + 1})
			start = i + 1
		}
	}
	return ranges
}

// Package tokens provides the shared token cache the block engine and the
// inline passes navigate: the raw token stream, a whitespace-filtered view
// of it, and cheap value iterators over the filtered view with raw lookups.
package tokens

import (
	"sort"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Cache holds the raw and filtered token streams for one source buffer.
// It is immutable after construction and safe for concurrent reads.
type Cache struct {
	src      []byte
	raw      []mdast.Token
	filtered []int // raw index of each filtered token
}

// NewCache builds a cache over src and its lossless token stream.
func NewCache(src []byte, toks []mdast.Token) *Cache {
	filtered := make([]int, 0, len(toks))
	for i, tok := range toks {
		if tok.Kind != mdast.TokWhitespace {
			filtered = append(filtered, i)
		}
	}

	return &Cache{src: src, raw: toks, filtered: filtered}
}

// Source returns the source buffer.
func (c *Cache) Source() []byte { return c.src }

// RawLen returns the number of raw tokens.
func (c *Cache) RawLen() int { return len(c.raw) }

// Len returns the number of filtered tokens.
func (c *Cache) Len() int { return len(c.filtered) }

// Raw returns the raw token at index i.
func (c *Cache) Raw(i int) mdast.Token { return c.raw[i] }

// RawTokens returns the raw token slice. Callers must not modify it.
func (c *Cache) RawTokens() []mdast.Token { return c.raw }

// Filtered returns the filtered token at index i.
func (c *Cache) Filtered(i int) mdast.Token { return c.raw[c.filtered[i]] }

// RawIndex maps a filtered index to its raw index. Indices before the
// stream map to -1 and indices past it map to RawLen.
func (c *Cache) RawIndex(filtered int) int {
	switch {
	case filtered < 0:
		return -1
	case filtered >= len(c.filtered):
		return len(c.raw)
	default:
		return c.filtered[filtered]
	}
}

// CalcCurrentPosition returns the first filtered index whose token ends
// after offset, or Len when offset is past the last filtered token.
func (c *Cache) CalcCurrentPosition(offset int) int {
	return sort.Search(len(c.filtered), func(i int) bool {
		return c.raw[c.filtered[i]].End > offset
	})
}

// Iterator returns an iterator positioned at filtered index pos.
func (c *Cache) Iterator(pos int) Iterator {
	return Iterator{cache: c, index: pos}
}

// ListIterator returns an iterator stepping over the sparse, ascending list
// of filtered indices, positioned at list position pos.
func (c *Cache) ListIterator(indices []int, pos int) ListIterator {
	return ListIterator{Iterator: Iterator{cache: c}, indices: indices, listPos: pos}.sync()
}

package tokens

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Iterator is a position in the filtered token stream. It is a value type:
// Advance and Rollback return new iterators.
type Iterator struct {
	cache *Cache
	index int
}

// Index returns the filtered index.
func (it Iterator) Index() int { return it.index }

// Cache returns the cache the iterator walks.
func (it Iterator) Cache() *Cache { return it.cache }

// Valid reports whether the iterator points at a filtered token.
func (it Iterator) Valid() bool {
	return it.index >= 0 && it.index < it.cache.Len()
}

// Advance returns the iterator at the next filtered token.
func (it Iterator) Advance() Iterator {
	it.index++
	return it
}

// Rollback returns the iterator at the previous filtered token.
func (it Iterator) Rollback() Iterator {
	it.index--
	return it
}

// Kind returns the current token kind, or KindNone outside the stream.
func (it Iterator) Kind() mdast.Kind { return it.RawLookup(0) }

// Text returns the current token text.
func (it Iterator) Text() []byte { return it.RawText(0) }

// Start returns the current token's start offset.
func (it Iterator) Start() int { return it.RawStart(0) }

// End returns the current token's end offset.
func (it Iterator) End() int { return it.RawStart(1) }

// rawIndex returns the raw index k steps away from the current token.
func (it Iterator) rawIndex(k int) int {
	return it.cache.RawIndex(it.index) + k
}

// RawLookup returns the kind of the raw token k steps away (negative looks
// back), or KindNone outside the raw stream.
func (it Iterator) RawLookup(k int) mdast.Kind {
	raw := it.rawIndex(k)
	if raw < 0 || raw >= it.cache.RawLen() {
		return mdast.KindNone
	}
	return it.cache.raw[raw].Kind
}

// RawStart returns the start offset of the raw token k steps away, clamped
// to 0 before the stream and to len(src) after it.
func (it Iterator) RawStart(k int) int {
	raw := it.rawIndex(k)
	switch {
	case raw < 0:
		return 0
	case raw >= it.cache.RawLen():
		return len(it.cache.src)
	default:
		return it.cache.raw[raw].Start
	}
}

// RawText returns the text of the raw token k steps away, or nil outside
// the raw stream.
func (it Iterator) RawText(k int) []byte {
	raw := it.rawIndex(k)
	if raw < 0 || raw >= it.cache.RawLen() {
		return nil
	}
	return it.cache.raw[raw].Text(it.cache.src)
}

// ListIterator walks a sparse list of filtered indices. Outside the list
// its Kind is KindNone.
type ListIterator struct {
	Iterator

	indices []int
	listPos int
}

// sync points the embedded iterator at the filtered index for listPos.
func (l ListIterator) sync() ListIterator {
	switch {
	case l.listPos < 0:
		l.index = -1
	case l.listPos >= len(l.indices):
		l.index = l.cache.Len()
	default:
		l.index = l.indices[l.listPos]
	}
	return l
}

// InList reports whether the iterator is within the index list.
func (l ListIterator) InList() bool {
	return l.listPos >= 0 && l.listPos < len(l.indices)
}

// ListPos returns the position within the index list.
func (l ListIterator) ListPos() int { return l.listPos }

// Advance returns the iterator at the next list entry.
func (l ListIterator) Advance() ListIterator {
	l.listPos++
	return l.sync()
}

// Rollback returns the iterator at the previous list entry.
func (l ListIterator) Rollback() ListIterator {
	l.listPos--
	return l.sync()
}

// Kind returns the token kind at the list position, or KindNone outside it.
func (l ListIterator) Kind() mdast.Kind {
	if !l.InList() {
		return mdast.KindNone
	}
	return l.Iterator.Kind()
}

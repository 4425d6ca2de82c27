// Package constraints models the container prefix of a line: the stack of
// blockquote and list levels a line must carry to stay inside the blocks
// opened by previous lines.
package constraints

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// QuoteChar is the level character of a blockquote.
const QuoteChar = '>'

const (
	codeIndent      = 4
	quoteIndentStep = 2
)

// Constraints is an immutable stack of container levels. Each level records
// its cumulative indent, its character ('>' for blockquotes, the bullet or
// the ordered-marker delimiter for lists) and whether a marker for it was
// present on the line.
type Constraints struct {
	indents  []int
	chars    []byte
	explicit []bool
}

// Base is the empty constraint stack of top-level content.
var Base = Constraints{}

// IsConstraintKind reports whether kind opens a container level.
func IsConstraintKind(kind mdast.Kind) bool {
	return kind == mdast.TokListNumber || kind == mdast.TokListBullet || kind == mdast.TokBlockQuote
}

// Len returns the number of levels.
func (c Constraints) Len() int { return len(c.indents) }

// Indent returns the cumulative indent of the innermost level.
func (c Constraints) Indent() int {
	if len(c.indents) == 0 {
		return 0
	}
	return c.indents[len(c.indents)-1]
}

// Char returns the level character at depth i.
func (c Constraints) Char(i int) byte { return c.chars[i] }

// IsExplicit reports whether level i had a marker on its line.
func (c Constraints) IsExplicit(i int) bool { return c.explicit[i] }

// LastChar returns the innermost level character, or 0 for Base.
func (c Constraints) LastChar() byte {
	if len(c.chars) == 0 {
		return 0
	}
	return c.chars[len(c.chars)-1]
}

// with returns a copy of c extended by one level.
func (c Constraints) with(indent int, char byte, explicit bool) Constraints {
	size := len(c.indents)

	next := Constraints{
		indents:  make([]int, size+1),
		chars:    make([]byte, size+1),
		explicit: make([]bool, size+1),
	}
	copy(next.indents, c.indents)
	copy(next.chars, c.chars)
	copy(next.explicit, c.explicit)

	next.indents[size] = indent
	next.chars[size] = char
	next.explicit[size] = explicit
	return next
}

// StartsWith reports whether other is a prefix of c by level characters.
func (c Constraints) StartsWith(other Constraints) bool {
	if len(c.chars) < len(other.chars) {
		return false
	}
	for i := range other.chars {
		if c.chars[i] != other.chars[i] {
			return false
		}
	}
	return true
}

// ContainsListMarkers reports whether some level below upTo is an explicit
// list marker.
func (c Constraints) ContainsListMarkers(upTo int) bool {
	upTo = min(upTo, len(c.chars))
	for i := range upTo {
		if c.chars[i] != QuoteChar && c.explicit[i] {
			return true
		}
	}
	return false
}

// ExtendsPrev reports whether a line with constraints c continues a block
// opened with constraints prev.
func (c Constraints) ExtendsPrev(prev Constraints) bool {
	return c.StartsWith(prev) && !c.ContainsListMarkers(prev.Len())
}

// ExtendsList is ExtendsPrev for a list, whose own level may carry a new
// item marker. It panics when list is Base.
func (c Constraints) ExtendsList(list Constraints) bool {
	if list.Len() == 0 {
		panic("constraints: list constraints must contain at least one level")
	}
	return c.StartsWith(list) && !c.ContainsListMarkers(list.Len()-1)
}

// UpstreamWith reports whether c is a prefix of other and c carries no
// explicit list markers.
func (c Constraints) UpstreamWith(other Constraints) bool {
	return other.StartsWith(c) && !c.ContainsListMarkers(c.Len())
}

// String renders the levels as "[>2! -4]": level character, cumulative
// indent, and '!' for explicit levels.
func (c Constraints) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range c.indents {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c.chars[i])
		sb.WriteString(strconv.Itoa(c.indents[i]))
		if c.explicit[i] {
			sb.WriteByte('!')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

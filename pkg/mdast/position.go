package mdast

import "fmt"

// Position is a point in the source. Line and Column are 1-based; Column
// counts bytes. The zero value means unknown.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p was resolved against a snapshot.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open source range of a node.
type Span struct {
	Start Position
	End   Position
}

// String renders the span as "L:C-L:C".
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Span resolves the line and column range of n.
func (f *FileSnapshot) Span(n *Node) Span {
	if f == nil || n == nil {
		return Span{}
	}
	return Span{Start: f.PositionAt(n.Start), End: f.PositionAt(n.End)}
}

package production

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Holder accumulates productions and tracks the current filtered position
// so markers can record where they started.
type Holder struct {
	position int
	nodes    []Node
}

// NewHolder returns an empty holder at position 0.
func NewHolder() *Holder {
	return &Holder{}
}

// UpdatePosition moves the current position.
func (h *Holder) UpdatePosition(pos int) { h.position = pos }

// Position returns the current position.
func (h *Holder) Position() int { return h.position }

// Add appends productions.
func (h *Holder) Add(nodes ...Node) {
	h.nodes = append(h.nodes, nodes...)
}

// Nodes returns the productions added so far.
func (h *Holder) Nodes() []Node { return h.nodes }

// Mark opens a marker at the current position.
func (h *Holder) Mark() Marker {
	return Marker{holder: h, start: h.position}
}

// Marker records the start of a production until it is done.
type Marker struct {
	holder *Holder
	start  int
}

// Start returns the position at which the marker was opened.
func (m Marker) Start() int { return m.start }

// Done adds a production of kind from the marker start to the holder's
// current position.
func (m Marker) Done(kind mdast.Kind) {
	m.holder.Add(Node{Range: Range{Start: m.start, End: m.holder.position}, Kind: kind})
}

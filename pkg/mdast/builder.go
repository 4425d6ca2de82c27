package mdast

// NewNode creates a new composite node of the specified kind.
// Its range is empty until children are appended.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind, Start: -1, End: -1}
}

// NewLeaf creates a leaf node covering the given token.
func NewLeaf(tok Token) *Node {
	return &Node{Kind: tok.Kind, Start: tok.Start, End: tok.End}
}

// AppendChild appends a child node to a parent and extends the parent's
// range to cover it.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
		parent.Start = child.Start
	}

	parent.LastChild = child
	parent.End = child.End
}

// RemoveChild removes a child from its parent.
// The parent's range is not recomputed.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

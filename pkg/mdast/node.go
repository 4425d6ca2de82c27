package mdast

// Node represents a single node in the concrete syntax tree.
// Leaves carry a token kind and cover exactly one token; composites carry an
// element kind and cover exactly the union of their children.
type Node struct {
	// Kind identifies what type of node this is.
	Kind Kind

	// Byte range of the node in the source, [Start, End).
	Start int
	End   int

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// IsLeaf returns true if this node represents a single token.
func (n *Node) IsLeaf() bool {
	return n.Kind.IsToken()
}

// IsBlock returns true if this is a block-level element.
func (n *Node) IsBlock() bool {
	return n.Kind.IsBlock()
}

// IsInline returns true if this is an inline-level element.
func (n *Node) IsInline() bool {
	return n.Kind.IsInline()
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Len returns the byte length of the node.
func (n *Node) Len() int {
	return n.End - n.Start
}

// Text returns the source text covered by the node.
func (n *Node) Text(content []byte) []byte {
	if n.Start < 0 || n.End > len(content) || n.Start > n.End {
		return nil
	}
	return content[n.Start:n.End]
}

// Depth returns the number of ancestors of the node.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

package mdast

// WalkStatus tells Walk how to continue after visiting a node.
type WalkStatus int

const (
	// WalkContinue visits the children and then the following siblings.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren skips the children of the node being entered.
	WalkSkipChildren

	// WalkStop ends the walk without an error.
	WalkStop
)

// Walker is called twice for every composite, with entering true before
// the children and false after them. Leaves are visited once, entering.
type Walker func(n *Node, entering bool) (WalkStatus, error)

// Walk traverses the tree rooted at root in document order. A non-nil
// error from walker stops the walk and is returned.
func Walk(root *Node, walker Walker) error {
	if root == nil {
		return nil
	}
	_, err := walk(root, walker)
	return err
}

func walk(n *Node, walker Walker) (WalkStatus, error) {
	status, err := walker(n, true)
	if err != nil || status == WalkStop {
		return WalkStop, err
	}
	if n.IsLeaf() {
		return WalkContinue, nil
	}

	if status != WalkSkipChildren {
		for child := n.FirstChild; child != nil; child = child.Next {
			if s, err := walk(child, walker); err != nil || s == WalkStop {
				return WalkStop, err
			}
		}
	}

	status, err = walker(n, false)
	if err != nil || status == WalkStop {
		return WalkStop, err
	}
	return WalkContinue, nil
}

// FindAll returns the nodes matching predicate in document order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var found []*Node
	_ = Walk(root, func(n *Node, entering bool) (WalkStatus, error) {
		if entering && predicate(n) {
			found = append(found, n)
		}
		return WalkContinue, nil
	})
	return found
}

// FindFirst returns the first node matching predicate, or nil.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node
	_ = Walk(root, func(n *Node, entering bool) (WalkStatus, error) {
		if entering && predicate(n) {
			found = n
			return WalkStop, nil
		}
		return WalkContinue, nil
	})
	return found
}

// FindByKind returns all nodes of the given kind.
func FindByKind(root *Node, kind Kind) []*Node {
	return FindAll(root, func(n *Node) bool { return n.Kind == kind })
}

// Leaves returns the tokens under root in document order. Their texts
// concatenate to the text of root.
func Leaves(root *Node) []*Node {
	return FindAll(root, (*Node).IsLeaf)
}

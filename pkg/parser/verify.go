package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// ErrInvalidTree is wrapped by every error returned from Verify.
var ErrInvalidTree = errors.New("invalid syntax tree")

// Verify checks the structural invariants of a tree parsed from src: the
// leaves are contiguous tokens that concatenate to src, and every composite
// covers exactly the union of its children.
func Verify(root *mdast.Node, src []byte) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidTree)
	}

	var (
		text bytes.Buffer
		next int
	)

	err := mdast.Walk(root, func(n *mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}
		if n.IsLeaf() {
			if n.Start != next || n.End <= n.Start || n.End > len(src) {
				return mdast.WalkStop, fmt.Errorf("%w: %s leaf %d..%d, expected start %d", ErrInvalidTree, n.Kind, n.Start, n.End, next)
			}
			text.Write(src[n.Start:n.End])
			next = n.End
			return mdast.WalkContinue, nil
		}

		return mdast.WalkContinue, verifyComposite(n, root)
	})
	if err != nil {
		return err
	}

	if !bytes.Equal(text.Bytes(), src) {
		return fmt.Errorf("%w: leaves cover %d of %d bytes", ErrInvalidTree, text.Len(), len(src))
	}
	return nil
}

func verifyComposite(n, root *mdast.Node) error {
	if n.FirstChild == nil {
		if n == root && n.Start == 0 && n.End == 0 {
			return nil
		}
		return fmt.Errorf("%w: empty %s at %d", ErrInvalidTree, n.Kind, n.Start)
	}

	if n.FirstChild.Start != n.Start || n.LastChild.End != n.End {
		return fmt.Errorf("%w: %s %d..%d does not match its children %d..%d",
			ErrInvalidTree, n.Kind, n.Start, n.End, n.FirstChild.Start, n.LastChild.End)
	}

	for c := n.FirstChild; c.Next != nil; c = c.Next {
		if c.End != c.Next.Start {
			return fmt.Errorf("%w: children of %s are not contiguous at %d", ErrInvalidTree, n.Kind, c.End)
		}
	}
	return nil
}

package crosscheck

import "github.com/yaklabco/mdcst/pkg/mdast"

// TreeOutline returns the labels of the top-level blocks of a concrete
// syntax tree. Paragraphs holding only link definitions are skipped, as
// goldmark removes them. Consecutive HTML block lines not separated by a
// blank line form one block.
func TreeOutline(root *mdast.Node) []string {
	if root == nil {
		return nil
	}

	var out []string
	eols := 0
	lastHTML := false

	for child := root.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case mdast.TokEOL:
			eols++
			continue
		case mdast.TokWhitespace:
			continue
		}

		label := treeLabel(child)
		if label == BlockHTML && lastHTML && eols < 2 {
			eols = 0
			continue
		}

		lastHTML = label == BlockHTML
		eols = 0
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

func treeLabel(n *mdast.Node) string {
	if n.Kind.IsHeading() {
		return headingLabel(n.Kind.HeadingLevel())
	}

	switch n.Kind {
	case mdast.NodeParagraph:
		if onlyDefinitions(n) {
			return ""
		}
		return BlockParagraph
	case mdast.NodeUnorderedList:
		return BlockUnorderedList
	case mdast.NodeOrderedList:
		return BlockOrderedList
	case mdast.NodeBlockQuote:
		return BlockQuote
	case mdast.NodeCodeBlock:
		return BlockCode
	case mdast.NodeCodeFence:
		return BlockFencedCode
	case mdast.TokHorizontalRule:
		return BlockThematicBreak
	case mdast.TokHTMLBlock:
		return BlockHTML
	default:
		return ""
	}
}

func onlyDefinitions(paragraph *mdast.Node) bool {
	found := false
	for child := paragraph.FirstChild; child != nil; child = child.Next {
		switch {
		case child.Kind == mdast.NodeLinkDefinition:
			found = true
		case child.Kind.IsWhitespace(), child.Kind == mdast.TokEOL:
		default:
			return false
		}
	}
	return found
}

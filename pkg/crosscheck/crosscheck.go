// Package crosscheck compares the block structure of a concrete syntax tree
// against the tree goldmark builds for the same source. It is a test oracle
// for the block engine: mismatches are reported, never corrected.
package crosscheck

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Block labels shared by both outlines.
const (
	BlockParagraph     = "paragraph"
	BlockUnorderedList = "unordered-list"
	BlockOrderedList   = "ordered-list"
	BlockQuote         = "blockquote"
	BlockCode          = "code-block"
	BlockFencedCode    = "fenced-code-block"
	BlockThematicBreak = "thematic-break"
	BlockHTML          = "html-block"
)

// Mismatch is one position where the outlines disagree. An empty Want or
// Got means the block is missing on that side.
type Mismatch struct {
	Index int    `json:"index"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// String implements fmt.Stringer.
func (m Mismatch) String() string {
	want, got := m.Want, m.Got
	if want == "" {
		want = "<none>"
	}
	if got == "" {
		got = "<none>"
	}
	return fmt.Sprintf("block %d: goldmark has %s, tree has %s", m.Index, want, got)
}

// Checker holds a configured goldmark instance. It is safe for concurrent
// use.
type Checker struct {
	md goldmark.Markdown
}

// New returns a checker using goldmark's CommonMark parser without
// extensions.
func New() *Checker {
	return &Checker{md: goldmark.New()}
}

// Compare parses src with goldmark and returns the positions where its
// top-level blocks differ from those of root.
func (c *Checker) Compare(src []byte, root *mdast.Node) []Mismatch {
	return diff(c.Outline(src), TreeOutline(root))
}

// Outline returns the labels of goldmark's top-level blocks for src.
func (c *Checker) Outline(src []byte) []string {
	reader := text.NewReader(src)
	doc := c.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var out []string
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if label := goldmarkLabel(child); label != "" {
			out = append(out, label)
		}
	}
	return out
}

// Compare is a convenience wrapper around a fresh Checker.
func Compare(src []byte, root *mdast.Node) []Mismatch {
	return New().Compare(src, root)
}

func goldmarkLabel(n ast.Node) string {
	switch gmn := n.(type) {
	case *ast.Heading:
		return headingLabel(gmn.Level)
	case *ast.Paragraph, *ast.TextBlock:
		// A paragraph holding only link reference definitions is left in
		// the document as a block with no lines.
		if n.Lines().Len() == 0 {
			return ""
		}
		return BlockParagraph
	case *ast.List:
		if gmn.IsOrdered() {
			return BlockOrderedList
		}
		return BlockUnorderedList
	case *ast.Blockquote:
		return BlockQuote
	case *ast.FencedCodeBlock:
		return BlockFencedCode
	case *ast.CodeBlock:
		return BlockCode
	case *ast.ThematicBreak:
		return BlockThematicBreak
	case *ast.HTMLBlock:
		return BlockHTML
	default:
		return ""
	}
}

func headingLabel(level int) string {
	return fmt.Sprintf("heading-%d", level)
}

func diff(want, got []string) []Mismatch {
	var out []Mismatch
	for i := range max(len(want), len(got)) {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			out = append(out, Mismatch{Index: i, Want: w, Got: g})
		}
	}
	return out
}

package mdast

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// DumpOptions controls the textual tree dump.
type DumpOptions struct {
	// Positions appends the byte range of every node.
	Positions bool

	// Truncate clips leaf text previews to this many cells. Zero disables it.
	Truncate int

	// Style decorates the kind name of a node, e.g. with terminal colors.
	Style func(kind Kind, name string) string

	// Annotate returns extra text appended to a node's line, or "".
	Annotate func(n *Node) string
}

// Dump writes the tree rooted at root in the indented one-node-per-line
// format: composites print their kind, leaves print kind('text') with
// newlines escaped.
func Dump(w io.Writer, root *Node, content []byte, opts DumpOptions) error {
	bw := bufio.NewWriter(w)
	if root != nil {
		dumpNode(bw, root, content, 0, opts)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	return nil
}

// DumpString returns the dump of root as a string, one node per line,
// without a trailing newline.
func DumpString(root *Node, content []byte) string {
	var sb strings.Builder
	//nolint:errcheck // strings.Builder never fails
	Dump(&sb, root, content, DumpOptions{})
	return strings.TrimSuffix(sb.String(), "\n")
}

func dumpNode(w *bufio.Writer, n *Node, content []byte, depth int, opts DumpOptions) {
	w.WriteString(strings.Repeat("  ", depth))

	name := n.Kind.String()
	if opts.Style != nil {
		name = opts.Style(n.Kind, name)
	}
	w.WriteString(name)

	if n.IsLeaf() {
		text := escapeLeafText(string(n.Text(content)))
		if opts.Truncate > 0 {
			text = truncate.StringWithTail(text, uint(opts.Truncate), "…")
		}
		w.WriteString("('")
		w.WriteString(text)
		w.WriteString("')")
	}

	if opts.Positions {
		w.WriteString(" [")
		w.WriteString(strconv.Itoa(n.Start))
		w.WriteString(",")
		w.WriteString(strconv.Itoa(n.End))
		w.WriteString(")")
	}

	if opts.Annotate != nil {
		if note := opts.Annotate(n); note != "" {
			w.WriteString(" ")
			w.WriteString(note)
		}
	}
	w.WriteByte('\n')

	for child := n.FirstChild; child != nil; child = child.Next {
		dumpNode(w, child, content, depth+1, opts)
	}
}

func escapeLeafText(s string) string {
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}

// DumpNode is the serializable form of a tree node used for JSON and YAML
// output.
type DumpNode struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Start    int        `json:"start" yaml:"start"`
	End      int        `json:"end" yaml:"end"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Attrs    []string   `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []DumpNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToValue converts the tree rooted at n into DumpNode values. Leaves carry
// their source text; annotate may add attributes to any node.
func ToValue(n *Node, content []byte, annotate func(n *Node) string) DumpNode {
	value := DumpNode{
		Kind:  n.Kind.String(),
		Start: n.Start,
		End:   n.End,
	}
	if n.IsLeaf() {
		value.Text = string(n.Text(content))
	}
	if annotate != nil {
		if note := annotate(n); note != "" {
			value.Attrs = append(value.Attrs, note)
		}
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		value.Children = append(value.Children, ToValue(child, content, annotate))
	}
	return value
}

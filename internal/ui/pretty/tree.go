package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/mdcst/pkg/langdetect"
	"github.com/yaklabco/mdcst/pkg/mdast"
)

// TreeOptions controls FormatTree.
type TreeOptions struct {
	// Positions appends the byte range and line:column span of each node.
	Positions bool

	// Truncate clips leaf text previews to this many cells.
	Truncate int

	// Languages annotates fenced code blocks with their language.
	Languages bool
}

// FormatTree writes the styled tree of snapshot to w.
func (s *Styles) FormatTree(w io.Writer, snapshot *mdast.FileSnapshot, opts TreeOptions) error {
	if snapshot == nil {
		return nil
	}
	return mdast.Dump(w, snapshot.Root, snapshot.Content, mdast.DumpOptions{
		Truncate: opts.Truncate,
		Style:    s.RenderKind,
		Annotate: s.annotator(snapshot, opts),
	})
}

func (s *Styles) annotator(snapshot *mdast.FileSnapshot, opts TreeOptions) func(n *mdast.Node) string {
	if !opts.Positions && !opts.Languages {
		return nil
	}

	return func(n *mdast.Node) string {
		var parts []string
		if opts.Positions {
			parts = append(parts, s.Position.Render(FormatSpan(snapshot, n)))
		}
		if opts.Languages {
			if note := LanguageNote(n, snapshot.Content); note != "" {
				parts = append(parts, s.Language.Render(note))
			}
		}
		return strings.Join(parts, " ")
	}
}

// FormatSpan renders the byte range and line:column span of n,
// e.g. "[4,9) 2:1-2:6".
func FormatSpan(snapshot *mdast.FileSnapshot, n *mdast.Node) string {
	return fmt.Sprintf("[%d,%d) %s", n.Start, n.End, snapshot.Span(n))
}

// LanguageNote returns "lang=<name> (<source>)" for fenced code blocks
// whose language is known, or "".
func LanguageNote(n *mdast.Node, content []byte) string {
	lang, source := langdetect.FenceLanguage(n, content)
	if lang == "" {
		return ""
	}
	return fmt.Sprintf("lang=%s (%s)", lang, source)
}

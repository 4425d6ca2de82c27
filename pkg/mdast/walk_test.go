package mdast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// buildTestTree builds the tree for "# a\n*b*":
//
//	markdown-file
//	  atx-1
//	    atx-marker
//	    whitespace
//	    text
//	  eol
//	  paragraph
//	    emphasis
//	      emphasis-marker
//	      text
//	      emphasis-marker
func buildTestTree() (*mdast.Node, []byte) {
	content := []byte("# a\n*b*")

	doc := mdast.NewNode(mdast.NodeFile)

	heading := mdast.NewNode(mdast.NodeAtx1)
	mdast.AppendChild(heading, mdast.NewLeaf(mdast.Token{Kind: mdast.TokAtxHeader, Start: 0, End: 1}))
	mdast.AppendChild(heading, mdast.NewLeaf(mdast.Token{Kind: mdast.TokWhitespace, Start: 1, End: 2}))
	mdast.AppendChild(heading, mdast.NewLeaf(mdast.Token{Kind: mdast.TokText, Start: 2, End: 3}))
	mdast.AppendChild(doc, heading)
	mdast.AppendChild(doc, mdast.NewLeaf(mdast.Token{Kind: mdast.TokEOL, Start: 3, End: 4}))

	para := mdast.NewNode(mdast.NodeParagraph)
	emph := mdast.NewNode(mdast.NodeEmph)
	mdast.AppendChild(emph, mdast.NewLeaf(mdast.Token{Kind: mdast.TokEmph, Start: 4, End: 5}))
	mdast.AppendChild(emph, mdast.NewLeaf(mdast.Token{Kind: mdast.TokText, Start: 5, End: 6}))
	mdast.AppendChild(emph, mdast.NewLeaf(mdast.Token{Kind: mdast.TokEmph, Start: 6, End: 7}))
	mdast.AppendChild(para, emph)
	mdast.AppendChild(doc, para)

	return doc, content
}

func TestAppendChild_ExtendsRange(t *testing.T) {
	t.Parallel()

	doc, content := buildTestTree()

	assert.Equal(t, 0, doc.Start)
	assert.Equal(t, len(content), doc.End)
	assert.Equal(t, 3, doc.ChildCount())
	assert.Equal(t, "*b*", string(doc.LastChild.Text(content)))
	assert.Equal(t, 2, doc.LastChild.FirstChild.Depth())
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	doc, _ := buildTestTree()
	middle := doc.FirstChild.Next

	mdast.RemoveChild(doc, middle)

	assert.Nil(t, middle.Parent)
	assert.Equal(t, 2, doc.ChildCount())
	assert.Same(t, doc.LastChild, doc.FirstChild.Next)
	assert.Same(t, doc.FirstChild, doc.LastChild.Prev)
}

func TestWalk_Order(t *testing.T) {
	t.Parallel()

	doc, _ := buildTestTree()

	var events []string
	err := mdast.Walk(doc.LastChild, func(n *mdast.Node, entering bool) (mdast.WalkStatus, error) {
		sign := "-"
		if entering {
			sign = "+"
		}
		events = append(events, sign+n.Kind.String())
		return mdast.WalkContinue, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"+paragraph", "+emphasis",
		"+emphasis-marker", "+text", "+emphasis-marker",
		"-emphasis", "-paragraph",
	}, events)
}

func TestWalk_Status(t *testing.T) {
	t.Parallel()

	doc, _ := buildTestTree()
	errStop := errors.New("stop")

	tests := []struct {
		name    string
		walker  func(n *mdast.Node) (mdast.WalkStatus, error)
		visited int
		wantErr error
	}{
		{
			name:    "continue visits every node",
			walker:  func(*mdast.Node) (mdast.WalkStatus, error) { return mdast.WalkContinue, nil },
			visited: 11,
		},
		{
			name: "skip children of headings",
			walker: func(n *mdast.Node) (mdast.WalkStatus, error) {
				if n.Kind.IsHeading() {
					return mdast.WalkSkipChildren, nil
				}
				return mdast.WalkContinue, nil
			},
			visited: 8,
		},
		{
			name: "stop at the first eol",
			walker: func(n *mdast.Node) (mdast.WalkStatus, error) {
				if n.Kind == mdast.TokEOL {
					return mdast.WalkStop, nil
				}
				return mdast.WalkContinue, nil
			},
			visited: 6,
		},
		{
			name: "error stops the walk",
			walker: func(n *mdast.Node) (mdast.WalkStatus, error) {
				if n.Kind == mdast.TokEOL {
					return mdast.WalkContinue, errStop
				}
				return mdast.WalkContinue, nil
			},
			visited: 6,
			wantErr: errStop,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			visited := 0
			err := mdast.Walk(doc, func(n *mdast.Node, entering bool) (mdast.WalkStatus, error) {
				if !entering {
					return mdast.WalkContinue, nil
				}
				visited++
				return tc.walker(n)
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.visited, visited)
		})
	}
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()

	doc, content := buildTestTree()

	texts := mdast.FindByKind(doc, mdast.TokText)
	require.Len(t, texts, 2)
	assert.Equal(t, "a", string(texts[0].Text(content)))

	first := mdast.FindFirst(doc, func(n *mdast.Node) bool { return n.IsInline() })
	require.NotNil(t, first)
	assert.Equal(t, mdast.NodeEmph, first.Kind)

	assert.Nil(t, mdast.FindFirst(doc, func(n *mdast.Node) bool { return n.Kind == mdast.NodeStrong }))
	assert.Len(t, mdast.Leaves(doc), 7)
}

// Package mdast provides the lossless Markdown concrete syntax tree.
// It defines:
//   - Kind: the shared vocabulary of token and element kinds
//   - Token: the elementary lexer output, every byte classified
//   - Node: the tree, whose leaves concatenate back to the source
//   - FileSnapshot: content, line table, tokens and root for one file
package mdast

// FileSnapshot is one parsed file: the bytes, where its lines start, the
// token stream that tiles it and the tree built over those tokens.
type FileSnapshot struct {
	// Path names the input; "<stdin>" or empty for in-memory content.
	Path string

	Content []byte

	// Lines has one entry per line, including the empty line after a
	// trailing line break.
	Lines []Line

	Tokens []Token

	// Root is the markdown-file node.
	Root *Node
}

// Line is the byte layout of one source line. Text is [Start, Break) and
// the line terminator, if any, is [Break, End).
type Line struct {
	Start int
	Break int
	End   int
}

// NewFileSnapshot indexes the lines of content. Tokens and Root are filled
// in by the parser.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

package lexer

import (
	"bytes"

	"golang.org/x/net/html/atom"
)

// interruptingTags are the raw-text and block-level tags whose HTML blocks
// may start while a paragraph is open.
var interruptingTags = map[atom.Atom]bool{
	atom.Pre: true, atom.Script: true, atom.Style: true, atom.Textarea: true,

	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Base: true,
	atom.Basefont: true, atom.Blockquote: true, atom.Body: true, atom.Caption: true,
	atom.Center: true, atom.Col: true, atom.Colgroup: true, atom.Dd: true,
	atom.Details: true, atom.Dialog: true, atom.Dir: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.Frame: true,
	atom.Frameset: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Head: true,
	atom.Header: true, atom.Hr: true, atom.Html: true, atom.Iframe: true,
	atom.Legend: true, atom.Li: true, atom.Link: true, atom.Main: true,
	atom.Menu: true, atom.Menuitem: true, atom.Nav: true, atom.Noframes: true,
	atom.Ol: true, atom.Optgroup: true, atom.Option: true, atom.P: true,
	atom.Param: true, atom.Search: true, atom.Section: true, atom.Summary: true,
	atom.Table: true, atom.Tbody: true, atom.Td: true, atom.Tfoot: true,
	atom.Th: true, atom.Thead: true, atom.Title: true, atom.Tr: true,
	atom.Track: true, atom.Ul: true,
}

// htmlInterruptsParagraph reports whether the HTML block starting at pos
// may interrupt a paragraph. Comments, declarations and processing
// instructions may; of the tags only the interrupting ones, open or closed.
func (t *tokenizer) htmlInterruptsParagraph(pos int) bool {
	start := pos + 1
	switch t.content[start] {
	case '!', '?':
		return true
	case '/':
		start++
	}

	end := start
	for end < len(t.content) && (isLetter(t.content[end]) || isDigit(t.content[end])) {
		end++
	}
	if end == start {
		return false
	}
	if !t.atEOL(end) && !isSpace(t.content[end]) && t.content[end] != '>' && t.content[end] != '/' {
		return false
	}

	return interruptingTags[atom.Lookup(bytes.ToLower(t.content[start:end]))]
}

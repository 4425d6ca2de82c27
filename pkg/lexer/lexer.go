// Package lexer turns Markdown source into the elementary token stream
// consumed by the parser. Every byte of the input belongs to exactly one
// token; consecutive text-like tokens of the same kind are merged.
package lexer

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Lexer produces a lossless token stream for Markdown source.
type Lexer interface {
	Tokenize(content []byte) []mdast.Token
}

// Default is the CommonMark-flavored lexer.
type Default struct{}

// Tokenize implements Lexer.
func (Default) Tokenize(content []byte) []mdast.Token {
	return Tokenize(content)
}

// fenceState tracks an open fenced code block while lexing verbatim lines.
type fenceState struct {
	char      byte
	length    int
	quotes    int
	minIndent int
}

// paragraphState describes the paragraph text seen on the previous line,
// which decides whether a '='/'-' line is a setext underline and how deep a
// line must be indented to continue it as plain text.
type paragraphState struct {
	open bool
	// column is where the paragraph's first text starts, counted from the
	// line start.
	column int
	quotes int
}

// tokenizer performs a single-pass tokenization of Markdown content.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
type tokenizer struct {
	content []byte
	tokens  []mdast.Token
	pos     int

	lineStart int
	fence     *fenceState
	htmlBlock bool
	htmlQuote int
	paragraph paragraphState
}

// Tokenize performs a single-pass tokenization of the given content.
// Returns a slice of tokens that are contiguous, non-overlapping, and cover [0, len(content)).
func Tokenize(content []byte) []mdast.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 3
	tok := &tokenizer{
		content: content,
		tokens:  make([]mdast.Token, 0, len(content)/initialCapacityDivisor+1),
	}

	for tok.pos < len(tok.content) {
		tok.lineStart = tok.pos
		tok.tokenizeLine()
	}

	return merge(tok.tokens)
}

// mergeable lists the text-like kinds whose adjacent tokens collapse into one.
func mergeable(kind mdast.Kind) bool {
	switch kind {
	case mdast.TokText, mdast.TokWhitespace, mdast.TokCode, mdast.TokHTMLBlock,
		mdast.TokAutolink, mdast.TokEmailAutolink, mdast.TokBadCharacter:
		return true
	default:
		return false
	}
}

// merge collapses runs of adjacent mergeable tokens of the same kind in place.
func merge(tokens []mdast.Token) []mdast.Token {
	if len(tokens) < 2 {
		return tokens
	}

	out := tokens[:1]
	for _, tok := range tokens[1:] {
		last := &out[len(out)-1]
		if tok.Kind == last.Kind && mergeable(tok.Kind) && last.End == tok.Start {
			last.End = tok.End
			continue
		}
		out = append(out, tok)
	}
	return out
}

// emit adds a token to the token list. Empty spans are ignored.
func (t *tokenizer) emit(kind mdast.Kind, start, end int) {
	if end <= start {
		return
	}
	t.tokens = append(t.tokens, mdast.Token{Kind: kind, Start: start, End: end})
}

// emitSingle emits a single-byte token and advances position.
func (t *tokenizer) emitSingle(kind mdast.Kind) {
	t.emit(kind, t.pos, t.pos+1)
	t.pos++
}

// atEOL reports whether the position is at a line terminator or end of input.
func (t *tokenizer) atEOL(pos int) bool {
	return pos >= len(t.content) || t.content[pos] == '\n' || t.content[pos] == '\r'
}

// lineEnd returns the offset of the line terminator at or after pos.
func (t *tokenizer) lineEnd(pos int) int {
	for !t.atEOL(pos) {
		pos++
	}
	return pos
}

// restIsBlank reports whether only spaces and tabs remain on the line.
func (t *tokenizer) restIsBlank(pos int) bool {
	for ; !t.atEOL(pos); pos++ {
		if !isSpace(t.content[pos]) {
			return false
		}
	}
	return true
}

// consumeIndentation consumes spaces and tabs and emits them as whitespace.
// It returns the number of bytes consumed.
func (t *tokenizer) consumeIndentation() int {
	start := t.pos
	for t.pos < len(t.content) && isSpace(t.content[t.pos]) {
		t.pos++
	}
	t.emit(mdast.TokWhitespace, start, t.pos)
	return t.pos - start
}

// consumeNewline consumes a newline (LF, CRLF or a lone CR).
func (t *tokenizer) consumeNewline() {
	if t.pos >= len(t.content) {
		return
	}

	start := t.pos

	switch t.content[t.pos] {
	case '\r':
		t.pos++
		if t.pos < len(t.content) && t.content[t.pos] == '\n' {
			t.pos++
		}
	case '\n':
		t.pos++
	default:
		return
	}

	t.emit(mdast.TokEOL, start, t.pos)
}

// consumeRestAs emits the remainder of the line as one token of kind and
// consumes the line terminator. Trailing spaces become whitespace.
func (t *tokenizer) consumeRestAs(kind mdast.Kind) {
	end := t.lineEnd(t.pos)
	trimmed := end
	for trimmed > t.pos && isSpace(t.content[trimmed-1]) {
		trimmed--
	}
	t.emit(kind, t.pos, trimmed)
	t.emit(mdast.TokWhitespace, trimmed, end)
	t.pos = end
	t.consumeNewline()
}

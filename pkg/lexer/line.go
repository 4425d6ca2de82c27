package lexer

import (
	"github.com/yaklabco/mdcst/pkg/mdast"
)

const (
	maxHeadingLevel   = 6
	minFenceLength    = 3
	minThematicBreak  = 3
	maxOrderedDigits  = 9
	codeIndentColumns = 4
)

// tokenizeLine processes a single line starting at t.pos.
func (t *tokenizer) tokenizeLine() {
	if t.fence != nil {
		t.tokenizeFenceLine()
		return
	}

	if t.htmlBlock {
		if t.tokenizeHTMLLine() {
			return
		}
	}

	prefix := t.consumeContainerPrefix()
	indent := t.pos - prefix.contentLineStart

	if t.atEOL(t.pos) {
		t.paragraph = paragraphState{}
		t.consumeNewline()
		return
	}

	// A line indented four columns past the open paragraph's first text is
	// continuation text. Without an open paragraph the same indentation
	// starts indented code unless container markers came first. Either way
	// no block starters are recognized.
	if t.continuesParagraph() || (!t.paragraph.open && !prefix.markers && indent >= codeIndentColumns) {
		t.tokenizeInlineContent()
		t.consumeNewline()
		return
	}

	if t.trySetextUnderline(prefix) ||
		t.tryHeadingMarker() ||
		t.tryThematicBreak() ||
		t.tryCodeFence(prefix) ||
		t.tryHTMLBlock(prefix.quotes) {
		return
	}

	if !t.paragraph.open {
		t.paragraph = paragraphState{open: true, column: t.pos - t.lineStart, quotes: prefix.quotes}
	}

	t.tokenizeInlineContent()
	t.consumeNewline()
}

// linePrefix summarizes the container markers consumed at the start of a line.
type linePrefix struct {
	quotes           int
	markers          bool
	list             bool
	contentLineStart int
}

// consumeContainerPrefix consumes indentation, blockquote markers and list
// markers until the first content byte of the line. Markers indented four
// columns past the open paragraph's first text are paragraph text and end
// the prefix.
func (t *tokenizer) consumeContainerPrefix() linePrefix {
	prefix := linePrefix{contentLineStart: t.lineStart}

	for {
		t.consumeIndentation()
		if t.atEOL(t.pos) || t.continuesParagraph() {
			return prefix
		}

		switch char := t.content[t.pos]; {
		case char == '>':
			t.emitSingle(mdast.TokBlockQuote)
			prefix.quotes++
			prefix.markers = true
			prefix.contentLineStart = t.pos
		case char == '-' || char == '+' || char == '*':
			if t.isThematicBreak() || (char == '-' && t.setextAllowed(prefix) && t.isSetextRun(char)) {
				return prefix
			}
			if !t.atMarkerEnd(t.pos + 1) {
				return prefix
			}
			t.emitSingle(mdast.TokListBullet)
			prefix.markers = true
			prefix.list = true
			prefix.contentLineStart = t.lineStart
		case isDigit(char):
			if !t.tryOrderedListMarker() {
				return prefix
			}
			prefix.markers = true
			prefix.list = true
			prefix.contentLineStart = t.lineStart
		default:
			return prefix
		}
	}
}

// atMarkerEnd reports whether a list marker ending at pos is followed by
// whitespace, a line terminator or end of input.
func (t *tokenizer) atMarkerEnd(pos int) bool {
	return t.atEOL(pos) || isSpace(t.content[pos])
}

// tryOrderedListMarker recognizes 1-9 digits followed by '.' or ')'.
func (t *tokenizer) tryOrderedListMarker() bool {
	pos := t.pos
	for pos < len(t.content) && isDigit(t.content[pos]) && pos-t.pos < maxOrderedDigits {
		pos++
	}

	if pos >= len(t.content) || (t.content[pos] != '.' && t.content[pos] != ')') {
		return false
	}
	if !t.atMarkerEnd(pos + 1) {
		return false
	}

	t.emit(mdast.TokListNumber, t.pos, pos+1)
	t.pos = pos + 1
	return true
}

// continuesParagraph reports whether the current position is indented four
// or more columns past the open paragraph's first text.
func (t *tokenizer) continuesParagraph() bool {
	return t.paragraph.open && t.pos-t.lineStart >= t.paragraph.column+codeIndentColumns
}

// setextAllowed reports whether an underline at the current position would
// sit in the same or a deeper blockquote than the open paragraph.
func (t *tokenizer) setextAllowed(prefix linePrefix) bool {
	return t.paragraph.open && prefix.quotes >= t.paragraph.quotes
}

// isSetextRun reports whether the rest of the line is a run of char
// followed only by spaces.
func (t *tokenizer) isSetextRun(char byte) bool {
	pos := t.pos
	for pos < len(t.content) && t.content[pos] == char {
		pos++
	}
	return pos > t.pos && t.restIsBlank(pos)
}

// trySetextUnderline recognizes '=' or '-' underlines below paragraph text
// in the same or a deeper container.
func (t *tokenizer) trySetextUnderline(prefix linePrefix) bool {
	if !t.setextAllowed(prefix) {
		return false
	}

	char := t.content[t.pos]
	if (char != '=' && char != '-') || !t.isSetextRun(char) {
		return false
	}

	kind := mdast.TokSetext1
	if char == '-' {
		kind = mdast.TokSetext2
	}

	t.paragraph = paragraphState{}
	t.consumeRestAs(kind)
	return true
}

// tryHeadingMarker recognizes 1-6 '#' characters followed by whitespace or EOL.
func (t *tokenizer) tryHeadingMarker() bool {
	pos := t.pos
	for pos < len(t.content) && t.content[pos] == '#' {
		pos++
	}

	level := pos - t.pos
	if level == 0 || level > maxHeadingLevel || !t.atMarkerEnd(pos) {
		return false
	}

	t.emit(mdast.TokAtxHeader, t.pos, pos)
	t.pos = pos
	t.paragraph = paragraphState{}
	t.tokenizeInlineContent()
	t.consumeNewline()
	return true
}

// isThematicBreak checks if the rest of the line is 3+ of '*', '-' or '_'
// with only spaces between them.
func (t *tokenizer) isThematicBreak() bool {
	char := t.content[t.pos]
	if char != '*' && char != '-' && char != '_' {
		return false
	}

	count := 0
	for pos := t.pos; !t.atEOL(pos); pos++ {
		switch t.content[pos] {
		case char:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= minThematicBreak
}

func (t *tokenizer) tryThematicBreak() bool {
	if !t.isThematicBreak() {
		return false
	}

	t.paragraph = paragraphState{}
	t.consumeRestAs(mdast.TokHorizontalRule)
	return true
}

// tryCodeFence recognizes an opening fence of 3+ backticks or tildes and
// switches the tokenizer into verbatim mode.
func (t *tokenizer) tryCodeFence(prefix linePrefix) bool {
	char := t.content[t.pos]
	if char != '`' && char != '~' {
		return false
	}

	pos := t.pos
	for pos < len(t.content) && t.content[pos] == char {
		pos++
	}

	length := pos - t.pos
	if length < minFenceLength {
		return false
	}

	// A backtick fence's info string cannot contain backticks.
	if char == '`' {
		for scan := pos; !t.atEOL(scan); scan++ {
			if t.content[scan] == '`' {
				return false
			}
		}
	}

	state := &fenceState{char: char, length: length, quotes: prefix.quotes}
	if prefix.list {
		state.minIndent = t.pos - t.lineStart
	}

	t.emit(mdast.TokCodeFenceStart, t.pos, pos)
	t.pos = pos
	t.consumeIndentation()
	t.consumeRestAs(mdast.TokFenceLang)

	t.paragraph = paragraphState{}
	t.fence = state
	return true
}

// scanQuotePrefix returns the number of blockquote markers (at most n) at
// the start of the line and the offset just past them.
func (t *tokenizer) scanQuotePrefix(n int) (int, int) {
	pos := t.pos
	found := 0
	for found < n {
		scan := pos
		for scan < len(t.content) && isSpace(t.content[scan]) {
			scan++
		}
		if scan >= len(t.content) || t.content[scan] != '>' {
			break
		}
		pos = scan + 1
		found++
	}
	return found, pos
}

// consumeQuotePrefix re-lexes up to n blockquote markers of a verbatim line.
func (t *tokenizer) consumeQuotePrefix(n int) {
	for range n {
		start := t.pos
		for t.pos < len(t.content) && isSpace(t.content[t.pos]) {
			t.pos++
		}
		if t.pos >= len(t.content) || t.content[t.pos] != '>' {
			t.pos = start
			return
		}
		t.emit(mdast.TokWhitespace, start, t.pos)
		t.emitSingle(mdast.TokBlockQuote)
	}
}

// tokenizeFenceLine lexes a line inside a fenced code block. A line that
// leaves the fence's container ends the fence and is lexed normally.
func (t *tokenizer) tokenizeFenceLine() {
	quotes, after := t.scanQuotePrefix(t.fence.quotes)
	exit := quotes < t.fence.quotes
	if !exit && !t.restIsBlank(after) {
		column := after
		for column < len(t.content) && isSpace(t.content[column]) {
			column++
		}
		exit = column-t.lineStart < t.fence.minIndent
	}
	if exit {
		t.fence = nil
		t.tokenizeLine()
		return
	}

	t.consumeQuotePrefix(t.fence.quotes)
	t.consumeIndentation()

	if t.isClosingFence() {
		end := t.pos
		for end < len(t.content) && t.content[end] == t.fence.char {
			end++
		}
		t.emit(mdast.TokCodeFenceEnd, t.pos, end)
		t.pos = end
		t.consumeIndentation()
		t.consumeNewline()
		t.fence = nil
		return
	}

	t.consumeRestAs(mdast.TokCode)
}

// isClosingFence reports whether the line closes the open fence.
func (t *tokenizer) isClosingFence() bool {
	pos := t.pos
	for pos < len(t.content) && t.content[pos] == t.fence.char {
		pos++
	}
	return pos-t.pos >= t.fence.length && t.restIsBlank(pos)
}

// tryHTMLBlock recognizes a line starting with an HTML tag, comment or
// declaration. Only block-level tags, comments and declarations interrupt
// a paragraph.
func (t *tokenizer) tryHTMLBlock(quotes int) bool {
	if t.content[t.pos] != '<' || t.pos+1 >= len(t.content) {
		return false
	}

	next := t.content[t.pos+1]
	if !isLetter(next) && next != '/' && next != '!' && next != '?' {
		return false
	}
	if _, ok := t.matchAutolink(t.pos); ok {
		return false
	}
	if t.paragraph.open && !t.htmlInterruptsParagraph(t.pos) {
		return false
	}

	t.paragraph = paragraphState{}
	t.consumeRestAs(mdast.TokHTMLBlock)
	t.htmlBlock = true
	t.htmlQuote = quotes
	return true
}

// tokenizeHTMLLine lexes a continuation line of an HTML block. A blank line
// ends the block and is lexed normally; it returns false in that case.
func (t *tokenizer) tokenizeHTMLLine() bool {
	quotes, after := t.scanQuotePrefix(t.htmlQuote)
	if quotes < t.htmlQuote || t.restIsBlank(after) {
		t.htmlBlock = false
		return false
	}

	t.consumeQuotePrefix(t.htmlQuote)
	t.consumeIndentation()
	t.consumeRestAs(mdast.TokHTMLBlock)
	return true
}

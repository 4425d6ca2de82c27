package lexer

import (
	"unicode/utf8"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

const (
	minSchemeLength = 2
	maxSchemeLength = 32
)

// tokenizeInlineContent tokenizes the rest of the line up to its terminator.
func (t *tokenizer) tokenizeInlineContent() {
	for !t.atEOL(t.pos) {
		char := t.content[t.pos]

		switch char {
		case '\\':
			t.consumeEscape()
		case '`':
			t.consumeBackticks(mdast.TokBacktick, t.pos)
		case '*', '_':
			t.emitSingle(mdast.TokEmph)
		case '[':
			t.emitSingle(mdast.TokLBracket)
		case ']':
			t.emitSingle(mdast.TokRBracket)
		case '(':
			t.emitSingle(mdast.TokLParen)
		case ')':
			t.emitSingle(mdast.TokRParen)
		case '\'':
			t.emitSingle(mdast.TokSingleQuote)
		case '"':
			t.emitSingle(mdast.TokDoubleQuote)
		case ':':
			t.emitSingle(mdast.TokColon)
		case '!':
			t.emitSingle(mdast.TokExclamationMark)
		case '<':
			t.consumeAngle()
		case '>':
			t.emitSingle(mdast.TokGT)
		case ' ', '\t':
			t.consumeInlineWhitespace()
		case 0:
			t.emitSingle(mdast.TokBadCharacter)
		default:
			t.consumeText()
		}
	}
}

// consumeEscape handles a backslash. An escaped backtick run becomes one
// token so it never opens a code span; other escapes are plain text.
func (t *tokenizer) consumeEscape() {
	next := t.pos + 1
	if next >= len(t.content) || t.atEOL(next) {
		t.emitSingle(mdast.TokText)
		return
	}

	if t.content[next] == '`' {
		t.consumeBackticks(mdast.TokEscapedBackticks, t.pos)
		return
	}

	if isPunctuation(t.content[next]) {
		t.emit(mdast.TokText, t.pos, next+1)
		t.pos = next + 1
		return
	}

	t.emitSingle(mdast.TokText)
}

// consumeBackticks consumes a run of backticks starting at or after start
// and emits it as a single token of kind.
func (t *tokenizer) consumeBackticks(kind mdast.Kind, start int) {
	pos := t.pos
	if t.content[pos] == '\\' {
		pos++
	}
	for pos < len(t.content) && t.content[pos] == '`' {
		pos++
	}
	t.emit(kind, start, pos)
	t.pos = pos
}

// consumeAngle handles '<': an autolink, an inline HTML tag or a bare
// less-than sign.
func (t *tokenizer) consumeAngle() {
	if kind, ok := t.matchAutolink(t.pos); ok {
		end := t.lineEnd(t.pos)
		closing := t.pos + 1
		for closing < end && t.content[closing] != '>' {
			closing++
		}
		t.emitSingle(mdast.TokLT)
		t.emit(kind, t.pos, closing)
		t.pos = closing
		t.emitSingle(mdast.TokGT)
		return
	}

	if end, ok := t.matchInlineHTML(t.pos); ok {
		t.emit(mdast.TokHTMLTag, t.pos, end)
		t.pos = end
		return
	}

	t.emitSingle(mdast.TokLT)
}

// matchAutolink reports whether an autolink starts at pos and which kind of
// link body it carries.
func (t *tokenizer) matchAutolink(pos int) (mdast.Kind, bool) {
	end := t.lineEnd(pos)
	closing := pos + 1
	for closing < end && t.content[closing] != '>' {
		if t.content[closing] == '<' || isSpace(t.content[closing]) {
			return mdast.KindNone, false
		}
		closing++
	}
	if closing >= end {
		return mdast.KindNone, false
	}

	body := t.content[pos+1 : closing]
	switch {
	case isURIAutolink(body):
		return mdast.TokAutolink, true
	case isEmailAutolink(body):
		return mdast.TokEmailAutolink, true
	default:
		return mdast.KindNone, false
	}
}

// isURIAutolink matches scheme ":" followed by any non-space characters.
func isURIAutolink(body []byte) bool {
	colon := -1
	for i, char := range body {
		if char == ':' {
			colon = i
			break
		}
	}
	if colon < minSchemeLength || colon > maxSchemeLength || !isLetter(body[0]) {
		return false
	}

	for _, char := range body[1:colon] {
		if !isLetter(char) && !isDigit(char) && char != '+' && char != '.' && char != '-' {
			return false
		}
	}

	for _, char := range body[colon+1:] {
		if char < ' ' || char == 0x7f {
			return false
		}
	}
	return true
}

// isEmailAutolink matches local "@" domain with dot-separated labels.
func isEmailAutolink(body []byte) bool {
	at := -1
	for i, char := range body {
		if char == '@' {
			at = i
			break
		}
	}
	if at < 1 || at == len(body)-1 {
		return false
	}

	for _, char := range body[:at] {
		if !isLetter(char) && !isDigit(char) && !isEmailLocalPunct(char) {
			return false
		}
	}

	label := 0
	for _, char := range body[at+1:] {
		switch {
		case char == '.':
			if label == 0 {
				return false
			}
			label = 0
		case isLetter(char) || isDigit(char) || char == '-':
			label++
		default:
			return false
		}
	}
	return label > 0
}

// matchInlineHTML recognizes a tag, closing tag, comment, processing
// instruction or declaration that ends on the same line.
func (t *tokenizer) matchInlineHTML(pos int) (int, bool) {
	if pos+1 >= len(t.content) {
		return 0, false
	}

	next := t.content[pos+1]
	if !isLetter(next) && next != '/' && next != '!' && next != '?' {
		return 0, false
	}
	if next == '/' && (pos+2 >= len(t.content) || !isLetter(t.content[pos+2])) {
		return 0, false
	}

	end := t.lineEnd(pos)
	for scan := pos + 2; scan < end; scan++ {
		switch t.content[scan] {
		case '>':
			return scan + 1, true
		case '<':
			return 0, false
		}
	}
	return 0, false
}

// consumeInlineWhitespace consumes a run of spaces and tabs.
func (t *tokenizer) consumeInlineWhitespace() {
	start := t.pos
	for t.pos < len(t.content) && isSpace(t.content[t.pos]) {
		t.pos++
	}
	t.emit(mdast.TokWhitespace, start, t.pos)
}

// consumeText consumes plain text until a special character. Invalid UTF-8
// bytes are emitted as bad characters.
func (t *tokenizer) consumeText() {
	start := t.pos

	for t.pos < len(t.content) {
		char := t.content[t.pos]
		if char < utf8.RuneSelf {
			if isInlineSpecial(char) {
				break
			}
			t.pos++
			continue
		}

		r, size := utf8.DecodeRune(t.content[t.pos:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		t.pos += size
	}

	if t.pos > start {
		t.emit(mdast.TokText, start, t.pos)
		return
	}

	// Invalid UTF-8 byte at the current position.
	t.emitSingle(mdast.TokBadCharacter)
}

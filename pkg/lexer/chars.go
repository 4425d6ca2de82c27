package lexer

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isPunctuation checks if a byte is ASCII punctuation (escapable in Markdown).
func isPunctuation(c byte) bool {
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

func isEmailLocalPunct(c byte) bool {
	switch c {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	default:
		return false
	}
}

// isInlineSpecial reports whether c ends a run of plain text.
func isInlineSpecial(c byte) bool {
	switch c {
	case '\\', '`', '*', '_', '[', ']', '(', ')', '<', '>', '\'', '"', ':', '!',
		' ', '\t', '\n', '\r', 0:
		return true
	default:
		return false
	}
}

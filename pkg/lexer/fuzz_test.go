package lexer

import (
	"testing"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// FuzzTokenize fuzzes the tokenizer with random input.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"Hello, world!",
		"# Heading",
		"- list item",
		"1. ordered item",
		"> blockquote",
		"```\ncode\n```",
		"> ```go\n> func main() {}\n> ```",
		"*emphasis* and **strong**",
		"`code` \\`not code\\`",
		"[link](url \"title\")",
		"<https://example.com> <me@example.com>",
		"---",
		"Title\n=====",
		"<div>\nhtml\n\ntext",
		"line1\r\nline2\rline3",
		"\x00\xff\xfe",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tokens := Tokenize(data)

		if err := mdast.ValidateTokens(tokens, len(data)); err != nil {
			t.Fatalf("invalid token stream for %q: %v", data, err)
		}
	})
}

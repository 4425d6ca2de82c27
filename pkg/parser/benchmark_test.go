package parser_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdcst/pkg/lexer"
	"github.com/yaklabco/mdcst/pkg/parser"
)

// document is a mixed Markdown sample covering every block type.
var document = []byte(strings.Repeat(`# Heading

Some *emphasis*, **strong**, `+"`code`"+` and a [link](https://example.com "title").

- item one
- item two
  > nested quote

1. first
2. second

`+"```go\nfunc main() {}\n```"+`

    indented code

[ref]: /url

Setext
------

`, 50))

func BenchmarkTokenize(b *testing.B) {
	b.SetBytes(int64(len(document)))
	for b.Loop() {
		lexer.Tokenize(document)
	}
}

func BenchmarkParse(b *testing.B) {
	p := parser.New()
	b.SetBytes(int64(len(document)))
	for b.Loop() {
		if _, err := p.Parse(document); err != nil {
			b.Fatal(err)
		}
	}
}

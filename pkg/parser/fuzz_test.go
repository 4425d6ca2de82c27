package parser_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdcst/pkg/parser"
)

// FuzzParse checks that every input parses into a lossless tree.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"Hello, world!",
		"# Title\n\nParagraph with *emphasis* and **strong**.\n\n- item 1\n- item 2\n",
		"> quote\n> > nested\nlazy\n",
		"1. one\n   - two\n\n     three\n",
		"```go\nfunc main() {}\n```\n",
		"    code\n\ttab\n",
		"[a]: /u 't'\n[a][] [b](<c d> \"e\")\n",
		"Title\n===\n",
		"`` a ` b `` \\`c`\n",
		"<div>\n</div>\n<me@x.y>\n",
		"***a** b*",
		"\r\n\r\r\n",
		"[*][*]",
		"a\n    > `b\n    > c`",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		root, err := parser.Parse(data)
		if err != nil {
			if !errors.Is(err, parser.ErrResourceLimit) {
				t.Fatalf("unexpected error class for %q: %v", data, err)
			}
			return
		}

		if err := parser.Verify(root, data); err != nil {
			t.Fatalf("invalid tree for %q: %v", data, err)
		}
	})
}

package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcst/pkg/langdetect"
)

// Snippets as they appear inside unlabeled code fences.
func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bash shebang", "#!/usr/bin/env bash\nset -eu\n", "bash"},
		{"sh shebang", "#!/bin/sh\nls\n", "bash"},
		{"python shebang", "#!/usr/bin/env python3\nprint(1)\n", "python"},
		{"shebang beats patterns", "#!/bin/bash\ndef parse(src):\n", "bash"},
		{"go package clause", "package mdast\n\ntype Kind uint16\n", "go"},
		{"python function", "def parse(src):\n    return src\n", "python"},
		{"html document", "<html><body>x</body></html>", "html"},
		{"json array", `[{"kind": "text"}]`, "json"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add git\n", "dockerfile"},
		{"sql query", "select kind from tokens;", "sql"},
		{"rust main", "fn main() {\n    let mut n = 0;\n}\n", "rust"},
		{"javascript", "const kinds = ['text', 'eol'];\nconsole.log(kinds);\n", "javascript"},
		{"yaml mapping", "parser:\n  max_nesting_depth: 256\noutput:\n  tree: text\n", "yaml"},
		{"prose", "plain words only", langdetect.Text},
		{"empty", "", langdetect.Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

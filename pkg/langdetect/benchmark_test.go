package langdetect

import (
	"context"
	"testing"

	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/parser"
)

func BenchmarkDetect(b *testing.B) {
	samples := []struct {
		name string
		code string
	}{
		{"go", "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}"},
		{"python", "def hello():\n    print(\"hi\")\n\nif __name__ == \"__main__\":\n    hello()"},
		{"json", "{\n  \"name\": \"mdcst\",\n  \"tags\": [\"a\", \"b\"]\n}"},
		{"unknown", "lorem ipsum dolor sit amet"},
		{"empty", ""},
	}

	for _, sample := range samples {
		code := []byte(sample.code)
		b.Run(sample.name, func(b *testing.B) {
			for b.Loop() {
				Detect(code)
			}
		})
	}
}

func BenchmarkFenceLanguage(b *testing.B) {
	src := []byte("```\npackage main\n\nfunc main() {}\n```\n")
	snapshot, err := parser.ParseFile(context.Background(), "bench.md", src)
	if err != nil {
		b.Fatal(err)
	}
	fences := mdast.FindByKind(snapshot.Root, mdast.NodeCodeFence)
	if len(fences) != 1 {
		b.Fatalf("want 1 fence, got %d", len(fences))
	}

	for b.Loop() {
		FenceLanguage(fences[0], src)
	}
}

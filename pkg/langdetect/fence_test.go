package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/langdetect"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/parser"
)

func TestFenceLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		lang   string
		source langdetect.Source
	}{
		{
			name:   "info string",
			src:    "```go\nx := 1\n```\n",
			lang:   "go",
			source: langdetect.SourceInfo,
		},
		{
			name:   "info string with attributes",
			src:    "~~~ Golang extra words\nx\n~~~\n",
			lang:   "go",
			source: langdetect.SourceInfo,
		},
		{
			name:   "detected from content",
			src:    "```\npackage main\n```\n",
			lang:   "go",
			source: langdetect.SourceContent,
		},
		{
			name:   "empty fence",
			src:    "```\n```\n",
			lang:   "",
			source: langdetect.SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(tt.src)
			root, err := parser.Parse(src)
			require.NoError(t, err)

			fences := mdast.FindByKind(root, mdast.NodeCodeFence)
			require.Len(t, fences, 1)

			lang, source := langdetect.FenceLanguage(fences[0], src)
			assert.Equal(t, tt.lang, lang)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestFenceLanguage_OtherNodes(t *testing.T) {
	t.Parallel()

	lang, source := langdetect.FenceLanguage(mdast.NewNode(mdast.NodeParagraph), nil)
	assert.Empty(t, lang)
	assert.Equal(t, langdetect.SourceNone, source)
	assert.Equal(t, "none", source.String())

	lang, _ = langdetect.FenceLanguage(nil, nil)
	assert.Empty(t, lang)
}

func TestInfoLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want string
	}{
		{"go", "go"},
		{"  sh  ", "bash"},
		{"{.golang}", "go"},
		{"NotALanguage", "notalanguage"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.InfoLanguage(tt.info))
		})
	}
}

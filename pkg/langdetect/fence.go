package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

// Source tells where a fence language came from.
type Source int

// Language sources.
const (
	SourceNone Source = iota
	SourceInfo
	SourceContent
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceInfo:
		return "info"
	case SourceContent:
		return "content"
	default:
		return "none"
	}
}

// FenceLanguage returns the language of a fenced code block node. The first
// word of the info string wins; without one the content lines are run
// through Detect. Nodes other than fenced code blocks yield ("", SourceNone).
func FenceLanguage(node *mdast.Node, src []byte) (string, Source) {
	if node == nil || node.Kind != mdast.NodeCodeFence {
		return "", SourceNone
	}

	var code bytes.Buffer
	for child := node.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case mdast.TokFenceLang:
			if lang := InfoLanguage(string(child.Text(src))); lang != "" {
				return lang, SourceInfo
			}
		case mdast.TokCode:
			code.Write(child.Text(src))
			code.WriteByte('\n')
		}
	}

	if code.Len() == 0 {
		return "", SourceNone
	}
	return Detect(code.Bytes()), SourceContent
}

// InfoLanguage normalizes the first word of a fence info string. Known
// aliases map to their canonical name ("sh" and "shell" become "bash",
// "golang" becomes "go"); unknown words are lowercased.
func InfoLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	word := strings.Trim(fields[0], "{}.")
	if word == "" {
		return ""
	}
	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return normalize(lang)
	}
	return strings.ToLower(word)
}

// Package langdetect names the language of fenced code blocks. Info strings
// are resolved through go-enry's alias table; fences without one fall back
// to content detection.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

//nolint:gochecknoglobals // Read-only classifier candidates.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// pattern recognizes a language from a cheap textual signature.
type pattern struct {
	lang  string
	match func(raw, trimmed []byte, str string) bool
}

// Patterns run in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only pattern table.
var patterns = []pattern{
	{"go", func(_, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(_, _ []byte, str string) bool {
		switch {
		case strings.Contains(str, "def ") && strings.Contains(str, "):"):
			return true
		case strings.Contains(str, "__name__"), strings.Contains(str, "__main__"):
			return true
		case strings.Contains(str, "import (") || !strings.Contains(str, "import "):
			return false
		default:
			return strings.Contains(str, "from ") || strings.HasPrefix(strings.TrimSpace(str), "import ")
		}
	}},
	{"html", func(_, trimmed []byte, _ string) bool {
		lower := bytes.ToLower(trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte, _ string) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(raw, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(containsAll(raw, "\nFROM ", "\nRUN ")) ||
			(containsAll(raw, "WORKDIR ", "COPY "))
	}},
	{"sql", func(_, _ []byte, str string) bool {
		upper := strings.TrimSpace(strings.ToUpper(str))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(raw, _ []byte, _ string) bool {
		return containsAny(raw, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(raw, _ []byte, _ string) bool {
		return containsAny(raw, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", func(raw, _ []byte, _ string) bool {
		return yamlKeys(raw) >= 2
	}},
}

// Detect returns the language of a code snippet, or Text when it is empty
// or unrecognized. A shebang wins over patterns, and patterns win over the
// classifier.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	str := string(content)
	for _, p := range patterns {
		if p.match(content, trimmed, str) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// yamlKeys counts lines shaped like "key: value" or "- item".
func yamlKeys(content []byte) int {
	count := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") && line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

func containsAny(b []byte, subs ...string) bool {
	for _, s := range subs {
		if bytes.Contains(b, []byte(s)) {
			return true
		}
	}
	return false
}

func containsAll(b []byte, subs ...string) bool {
	for _, s := range subs {
		if !bytes.Contains(b, []byte(s)) {
			return false
		}
	}
	return true
}

// normalize converts a go-enry language name to a fence tag.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

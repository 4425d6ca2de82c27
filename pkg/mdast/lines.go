package mdast

import (
	"bytes"
	"sort"
)

// BuildLines splits content into lines. Line terminators are LF, CRLF and
// a lone CR, the same set the lexer emits as eol tokens. Content ending in
// a terminator has a final empty line.
func BuildLines(content []byte) []Line {
	if len(content) == 0 {
		return []Line{}
	}

	lines := make([]Line, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0
	for start <= len(content) {
		rel := bytes.IndexAny(content[start:], "\r\n")
		if rel < 0 {
			lines = append(lines, Line{Start: start, Break: len(content), End: len(content)})
			break
		}

		brk := start + rel
		end := brk + 1
		if content[brk] == '\r' && end < len(content) && content[end] == '\n' {
			end++
		}
		lines = append(lines, Line{Start: start, Break: brk, End: end})
		start = end
	}
	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// lineIndex returns the 0-based line holding offset. Offsets at or past
// the end of the content belong to the last line.
func (f *FileSnapshot) lineIndex(offset int) int {
	if offset >= len(f.Content) {
		return len(f.Lines) - 1
	}
	return sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].End > offset
	})
}

// PositionAt converts a byte offset to a 1-based line and byte column.
// Out-of-range offsets give the zero Position.
func (f *FileSnapshot) PositionAt(offset int) Position {
	if offset < 0 || offset > len(f.Content) || len(f.Lines) == 0 {
		return Position{}
	}

	idx := f.lineIndex(offset)
	return Position{
		Line:   idx + 1,
		Column: offset - f.Lines[idx].Start + 1,
		Offset: offset,
	}
}

// Offset converts a 1-based line and column back to a byte offset. The
// column may point just past the line terminator.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	l := f.Lines[line-1]
	offset := l.Start + col - 1
	if offset > l.End {
		return 0, false
	}
	return offset, true
}

// LineContent returns the text of a 1-based line without its terminator,
// or nil when the line does not exist.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}
	l := f.Lines[line-1]
	return f.Content[l.Start:l.Break]
}

package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

func line(start, brk, end int) mdast.Line {
	return mdast.Line{Start: start, Break: brk, End: end}
}

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []mdast.Line
	}{
		{"empty", "", []mdast.Line{}},
		{"no terminator", "abc", []mdast.Line{line(0, 3, 3)}},
		{"LF", "a\nbc", []mdast.Line{line(0, 1, 2), line(2, 4, 4)}},
		{"trailing LF", "a\n", []mdast.Line{line(0, 1, 2), line(2, 2, 2)}},
		{"CRLF", "a\r\nb", []mdast.Line{line(0, 1, 3), line(3, 4, 4)}},
		{"lone CR", "a\rb", []mdast.Line{line(0, 1, 2), line(2, 3, 3)}},
		{"CR then CRLF", "\r\r\n", []mdast.Line{line(0, 0, 1), line(1, 1, 3), line(3, 3, 3)}},
		{"blank lines", "\n\n", []mdast.Line{line(0, 0, 1), line(1, 1, 2), line(2, 2, 2)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mdast.BuildLines([]byte(tc.content)))
		})
	}
}

func TestFileSnapshot_PositionAt(t *testing.T) {
	t.Parallel()

	// Lines: "# a" / "" / "> b" / ""
	snapshot := mdast.NewFileSnapshot("doc.md", []byte("# a\n\n> b\n"))
	require.Equal(t, 4, snapshot.LineCount())

	tests := []struct {
		offset int
		want   string
	}{
		{0, "1:1"},
		{3, "1:4"},
		{4, "2:1"},
		{5, "3:1"},
		{7, "3:3"},
		{8, "3:4"},
		{9, "4:1"},
	}

	for _, tc := range tests {
		pos := snapshot.PositionAt(tc.offset)
		assert.True(t, pos.IsValid())
		assert.Equal(t, tc.want, pos.String(), "offset %d", tc.offset)
		assert.Equal(t, tc.offset, pos.Offset)
	}

	assert.False(t, snapshot.PositionAt(-1).IsValid())
	assert.False(t, snapshot.PositionAt(10).IsValid())
}

func TestFileSnapshot_OffsetRoundTrip(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("", []byte("ab\r\ncd\refg\n"))

	for offset := 0; offset <= len(snapshot.Content); offset++ {
		pos := snapshot.PositionAt(offset)
		got, ok := snapshot.Offset(pos.Line, pos.Column)
		require.True(t, ok, "offset %d", offset)
		assert.Equal(t, offset, got)
	}

	_, ok := snapshot.Offset(0, 1)
	assert.False(t, ok)
	_, ok = snapshot.Offset(1, 0)
	assert.False(t, ok)
	_, ok = snapshot.Offset(1, 6)
	assert.False(t, ok)
	_, ok = snapshot.Offset(5, 1)
	assert.False(t, ok)
}

func TestFileSnapshot_LineContent(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("", []byte("one\r\ntwo\rthree"))

	assert.Equal(t, "one", string(snapshot.LineContent(1)))
	assert.Equal(t, "two", string(snapshot.LineContent(2)))
	assert.Equal(t, "three", string(snapshot.LineContent(3)))
	assert.Nil(t, snapshot.LineContent(0))
	assert.Nil(t, snapshot.LineContent(4))
}

func TestFileSnapshot_Span(t *testing.T) {
	t.Parallel()

	content := []byte("# a\n*b*")
	snapshot := mdast.NewFileSnapshot("", content)
	doc, _ := buildTestTree()

	assert.Equal(t, "1:1-2:4", snapshot.Span(doc).String())
	assert.Equal(t, "2:1-2:4", snapshot.Span(doc.LastChild).String())
	assert.Equal(t, mdast.Span{}, snapshot.Span(nil))
}

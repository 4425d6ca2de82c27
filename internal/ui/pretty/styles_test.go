package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/runner"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"), "no-color Bold should not add formatting")
	assert.Equal(t, "test", styles.Status(runner.StatusInvalid).Render("test"))
	assert.Equal(t, "paragraph", styles.RenderKind(mdast.NodeParagraph, "paragraph"))
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not emit ANSI codes without a TTY, so only the text is checked.
	assert.Contains(t, styles.Status(runner.StatusOK).Render("ok"), "ok")
	assert.Contains(t, styles.RenderKind(mdast.TokEOL, "eol"), "eol")
}

func TestStyles_KindClasses(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)

	tests := []struct {
		kind mdast.Kind
		want string
	}{
		{mdast.NodeBlockQuote, styles.ContainerKind.Render("x")},
		{mdast.NodeParagraph, styles.BlockKind.Render("x")},
		{mdast.NodeEmph, styles.InlineKind.Render("x")},
		{mdast.TokWhitespace, styles.TriviaKind.Render("x")},
		{mdast.TokText, styles.LeafKind.Render("x")},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, styles.Kind(testCase.kind).Render("x"), testCase.kind.String())
	}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, &buf))
	assert.False(t, pretty.IsColorEnabled(config.ColorNever, os.Stdout))
	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, &buf), "non-TTY writer")
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode behaves as auto")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, os.Stdout))
}

func TestTermWidth_NonTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pretty.DefaultTermWidth, pretty.TermWidth(&bytes.Buffer{}))
}

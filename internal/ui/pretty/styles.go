// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/runner"
)

// DefaultTermWidth is used when the output is not a terminal.
const DefaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	OK       lipgloss.Style
	Invalid  lipgloss.Style
	Mismatch lipgloss.Style
	Limit    lipgloss.Style
	Error    lipgloss.Style

	// Tree components
	BlockKind     lipgloss.Style
	ContainerKind lipgloss.Style
	InlineKind    lipgloss.Style
	LeafKind      lipgloss.Style
	TriviaKind    lipgloss.Style
	Position      lipgloss.Style
	Language      lipgloss.Style

	// Report components
	FilePath lipgloss.Style
	Message  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Mismatch: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Limit:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		BlockKind:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		ContainerKind: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		InlineKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		LeafKind:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		TriviaKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Position:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Language:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Message:  lipgloss.NewStyle(),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		OK:             plain,
		Invalid:        plain,
		Mismatch:       plain,
		Limit:          plain,
		Error:          plain,
		BlockKind:      plain,
		ContainerKind:  plain,
		InlineKind:     plain,
		LeafKind:       plain,
		TriviaKind:     plain,
		Position:       plain,
		Language:       plain,
		FilePath:       plain,
		Message:        plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// Status returns the style for a file status.
func (s *Styles) Status(status runner.Status) lipgloss.Style {
	switch status {
	case runner.StatusOK:
		return s.OK
	case runner.StatusInvalid:
		return s.Invalid
	case runner.StatusMismatch:
		return s.Mismatch
	case runner.StatusLimit:
		return s.Limit
	default:
		return s.Error
	}
}

// Kind returns the style for a tree node kind.
func (s *Styles) Kind(kind mdast.Kind) lipgloss.Style {
	switch {
	case kind.IsContainer():
		return s.ContainerKind
	case kind.IsBlock():
		return s.BlockKind
	case kind.IsInline():
		return s.InlineKind
	case kind.IsWhitespace(), kind == mdast.TokEOL:
		return s.TriviaKind
	default:
		return s.LeafKind
	}
}

// RenderKind is a mdast.DumpOptions.Style function.
func (s *Styles) RenderKind(kind mdast.Kind, name string) string {
	return s.Kind(kind).Render(name)
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TermWidth returns the width of the terminal behind writer, or
// DefaultTermWidth.
func TermWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTermWidth
	}
	return width
}

// Package config defines the configuration of the mdcst command. The types
// are plain data; discovery and merging live in internal/configloader.
package config

import "slices"

// TreeFormat selects how a parsed tree is printed.
type TreeFormat string

const (
	TreeFormatText TreeFormat = "text"
	TreeFormatJSON TreeFormat = "json"
	TreeFormatYAML TreeFormat = "yaml"
)

// IsValid reports whether f is a known tree format.
func (f TreeFormat) IsValid() bool {
	switch f {
	case TreeFormatText, TreeFormatJSON, TreeFormatYAML:
		return true
	default:
		return false
	}
}

// ReportFormat selects how check results are printed.
type ReportFormat string

const (
	ReportFormatText    ReportFormat = "text"
	ReportFormatJSON    ReportFormat = "json"
	ReportFormatSummary ReportFormat = "summary"
)

// IsValid reports whether f is a known report format.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatText, ReportFormatJSON, ReportFormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Default limits, mirrored from the parser so the configuration file can
// show them.
const (
	DefaultMaxInputBytes   = 64 << 20
	DefaultMaxNestingDepth = 256
	DefaultTruncate        = 40
)

// ParserConfig bounds the resources a single parse may use.
type ParserConfig struct {
	MaxInputBytes   int `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`
	MaxNestingDepth int `mapstructure:"max_nesting_depth" yaml:"max_nesting_depth"`
}

// OutputConfig controls tree and report rendering.
type OutputConfig struct {
	Tree   TreeFormat   `mapstructure:"tree" yaml:"tree"`
	Report ReportFormat `mapstructure:"report" yaml:"report"`
	Color  ColorMode    `mapstructure:"color" yaml:"color"`

	// Positions prints line:column ranges next to each node.
	Positions bool `mapstructure:"positions" yaml:"positions"`

	// Truncate caps leaf previews at this many cells; 0 disables it.
	Truncate int `mapstructure:"truncate" yaml:"truncate"`

	// Languages annotates fenced code blocks with their detected language.
	Languages bool `mapstructure:"languages" yaml:"languages"`
}

// CheckConfig controls the check command.
type CheckConfig struct {
	// CrossCheck compares top-level blocks against goldmark.
	CrossCheck     bool `mapstructure:"crosscheck" yaml:"crosscheck"`
	Jobs           int  `mapstructure:"jobs" yaml:"jobs"`
	FollowSymlinks bool `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`
}

// Config is the root configuration structure.
type Config struct {
	Parser     ParserConfig `mapstructure:"parser" yaml:"parser"`
	Output     OutputConfig `mapstructure:"output" yaml:"output"`
	Check      CheckConfig  `mapstructure:"check" yaml:"check"`
	Ignore     []string     `mapstructure:"ignore" yaml:"ignore"`
	Extensions []string     `mapstructure:"extensions" yaml:"extensions"`
	LogLevel   string       `mapstructure:"log_level" yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Debug traces the block engine.
	Debug bool `mapstructure:"-" yaml:"-"`

	// OutputPath receives tree output instead of stdout.
	OutputPath string `mapstructure:"-" yaml:"-"`
}

// DefaultExtensions returns the file extensions treated as Markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxInputBytes:   DefaultMaxInputBytes,
			MaxNestingDepth: DefaultMaxNestingDepth,
		},
		Output: OutputConfig{
			Tree:     TreeFormatText,
			Report:   ReportFormatText,
			Color:    ColorAuto,
			Truncate: DefaultTruncate,
		},
		Check: CheckConfig{
			Jobs: 0, // 0 means use GOMAXPROCS
		},
		Extensions: DefaultExtensions(),
		LogLevel:   "info",
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Ignore = slices.Clone(c.Ignore)
	clone.Extensions = slices.Clone(c.Extensions)
	return &clone
}

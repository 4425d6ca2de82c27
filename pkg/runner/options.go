// Package runner checks many Markdown files concurrently: every file is
// parsed, verified for losslessness and optionally cross-checked against
// goldmark.
package runner

import (
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/parser"
)

// Options controls discovery and checking.
type Options struct {
	// Paths are files or directories to check. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths. Defaults to the process directory.
	WorkingDir string

	// Extensions (lowercase, with leading dot) select Markdown files inside
	// directories. Defaults to config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs restrict discovery when non-empty.
	IncludeGlobs []string

	// ExcludeGlobs skip files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs is the number of workers; 0 or less means runtime.NumCPU().
	Jobs int

	// MaxFileBytes rejects larger files before reading them.
	MaxFileBytes int64

	// CrossCheck compares each tree's top-level blocks against goldmark.
	CrossCheck bool
}

// OptionsFromConfig maps a resolved configuration onto runner options.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:          paths,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: cfg.Check.FollowSymlinks,
		Jobs:           cfg.Check.Jobs,
		MaxFileBytes:   int64(cfg.Parser.MaxInputBytes),
		CrossCheck:     cfg.Check.CrossCheck,
	}
}

// ParserFromConfig returns a parser with the configured limits.
func ParserFromConfig(cfg *config.Config, opts ...parser.Option) *parser.Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	all := append([]parser.Option{
		parser.WithMaxInputBytes(cfg.Parser.MaxInputBytes),
		parser.WithMaxNestingDepth(cfg.Parser.MaxNestingDepth),
	}, opts...)
	return parser.New(all...)
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

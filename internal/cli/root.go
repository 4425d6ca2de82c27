// Package cli provides the Cobra command structure for mdcst.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/mdcst/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	noConfig   bool
	debug      bool
	logLevel   string
	color      string
}

// apply copies explicitly set global flags onto cfg.
func (g *globalFlags) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("color") {
		cfg.Output.Color = config.ColorMode(g.color)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if g.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
}

// NewRootCommand creates the root mdcst command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdcst",
		Short: "A lossless Markdown concrete syntax tree parser",
		Long: `mdcst parses Markdown into a concrete syntax tree that keeps every byte
of the input: markers, indentation, blank lines and line endings are all
leaves of the tree, so concatenating the leaves reproduces the file exactly.

Use "parse" to inspect a tree, "tokens" to inspect the lexer output and
"check" to verify whole documentation trees, optionally cross-checking the
block structure against goldmark.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&global.configPath, "config", "", "path to config file")
	flags.BoolVar(&global.noConfig, "no-config", false, "ignore system, user and project config files")
	flags.BoolVar(&global.debug, "debug", false, "enable debug logging and block engine tracing")
	flags.StringVar(&global.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&global.color, "color", string(config.ColorAuto), "colorize output: auto, always, never")

	rootCmd.AddCommand(newParseCommand(global))
	rootCmd.AddCommand(newTokensCommand(global))
	rootCmd.AddCommand(newCheckCommand(global))
	rootCmd.AddCommand(newConfigCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(config.ColorMode(global.color), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/mdast"
)

type parseFlags struct {
	format    string
	positions bool
	truncate  int
	languages bool
	output    string
}

func newParseCommand(global *globalFlags) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the concrete syntax tree of a Markdown file",
		Long:  parseLongDescription,
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(config.TreeFormatText), "tree format: text, json, yaml")
	cmd.Flags().BoolVar(&flags.positions, "positions", false, "show byte ranges and line:column spans")
	cmd.Flags().IntVar(&flags.truncate, "truncate", config.DefaultTruncate, "clip leaf text to N cells (0 = never)")
	cmd.Flags().BoolVar(&flags.languages, "languages", false, "annotate fenced code blocks with their language")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the tree to a file instead of stdout")

	return cmd
}

const parseLongDescription = `Parse a Markdown file and print its concrete syntax tree.

Reads standard input when no file or "-" is given. Every node prints on its
own line, indented by depth; leaves show the exact source text they cover.

Examples:
  mdcst parse README.md                 # Indented tree
  mdcst parse --positions README.md     # With byte ranges and line:column spans
  mdcst parse --format json < doc.md    # JSON tree from stdin
  mdcst parse --languages -o tree.txt   # Annotate code fences, write to a file`

func runParse(cmd *cobra.Command, args []string, global *globalFlags, flags *parseFlags) error {
	if cmd.Flags().Changed("format") && !config.TreeFormat(flags.format).IsValid() {
		return usageError(fmt.Errorf("invalid --format %q: must be text, json or yaml", flags.format))
	}

	sess, err := newSession(cmd, global, func(cfg *config.Config) {
		set := cmd.Flags().Changed
		if set("format") {
			cfg.Output.Tree = config.TreeFormat(flags.format)
		}
		if set("positions") {
			cfg.Output.Positions = flags.positions
		}
		if set("truncate") {
			cfg.Output.Truncate = flags.truncate
		}
		if set("languages") {
			cfg.Output.Languages = flags.languages
		}
		cfg.OutputPath = flags.output
	})
	if err != nil {
		return err
	}

	snapshot, err := sess.parseInput(cmd, inputPath(args))
	if err != nil {
		return err
	}

	colorEnabled := sess.cfg.OutputPath == "" && pretty.IsColorEnabled(sess.cfg.Output.Color, cmd.OutOrStdout())
	data, err := renderTree(snapshot, sess.cfg.Output, pretty.NewStyles(colorEnabled))
	if err != nil {
		return err
	}

	return sess.writeOutput(cmd, sess.cfg.OutputPath, data)
}

// renderTree formats snapshot's tree in the configured format.
func renderTree(snapshot *mdast.FileSnapshot, out config.OutputConfig, styles *pretty.Styles) ([]byte, error) {
	var buf bytes.Buffer

	switch out.Tree {
	case config.TreeFormatJSON, config.TreeFormatYAML:
		var annotate func(n *mdast.Node) string
		if out.Languages {
			annotate = func(n *mdast.Node) string { return pretty.LanguageNote(n, snapshot.Content) }
		}
		value := mdast.ToValue(snapshot.Root, snapshot.Content, annotate)

		if out.Tree == config.TreeFormatJSON {
			encoder := json.NewEncoder(&buf)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(value); err != nil {
				return nil, fmt.Errorf("encode JSON: %w", err)
			}
			return buf.Bytes(), nil
		}

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(config.YAMLIndent)
		if err := encoder.Encode(value); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return buf.Bytes(), nil

	default:
		err := styles.FormatTree(&buf, snapshot, pretty.TreeOptions{
			Positions: out.Positions,
			Truncate:  out.Truncate,
			Languages: out.Languages,
		})
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

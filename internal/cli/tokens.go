package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/mdast"
)

// tokenValue is the serialized form of one lexer token.
type tokenValue struct {
	Kind  string `json:"kind" yaml:"kind"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
}

func newTokensCommand(global *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a Markdown file",
		Long: `Print the elementary tokens the lexer produces for a Markdown file, one
per line with its byte range and text. The tokens tile the input: each
starts where the previous one ends.

Examples:
  mdcst tokens README.md
  echo '*a*' | mdcst tokens --format json`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.TreeFormat(format).IsValid() {
				return usageError(fmt.Errorf("invalid --format %q: must be text, json or yaml", format))
			}

			sess, err := newSession(cmd, global, nil)
			if err != nil {
				return err
			}

			snapshot, err := sess.parseInput(cmd, inputPath(args))
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(sess.cfg.Output.Color, cmd.OutOrStdout()))
			data, err := renderTokens(snapshot, config.TreeFormat(format), styles)
			if err != nil {
				return err
			}
			return sess.writeOutput(cmd, "", data)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.TreeFormatText), "output format: text, json, yaml")

	return cmd
}

func renderTokens(snapshot *mdast.FileSnapshot, format config.TreeFormat, styles *pretty.Styles) ([]byte, error) {
	values := make([]tokenValue, 0, len(snapshot.Tokens))
	for _, tok := range snapshot.Tokens {
		values = append(values, tokenValue{
			Kind:  tok.Kind.String(),
			Start: tok.Start,
			End:   tok.End,
			Text:  string(snapshot.Content[tok.Start:tok.End]),
		})
	}

	var buf bytes.Buffer
	switch format {
	case config.TreeFormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(values); err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
	case config.TreeFormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(config.YAMLIndent)
		if err := encoder.Encode(values); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
	default:
		for i, tok := range snapshot.Tokens {
			fmt.Fprintf(&buf, "%s %s %s\n",
				styles.Kind(tok.Kind).Render(fmt.Sprintf("%-20s", values[i].Kind)),
				styles.Position.Render(fmt.Sprintf("[%d,%d)", tok.Start, tok.End)),
				strconv.Quote(values[i].Text),
			)
		}
	}
	return buf.Bytes(), nil
}

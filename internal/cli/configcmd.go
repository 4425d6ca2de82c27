package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcst/internal/configloader"
)

type configFlags struct {
	env   bool
	paths bool
}

func newConfigCommand(global *globalFlags) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration after merging defaults, config files, MDCST_*
environment variables and flags, as YAML that can be saved as .mdcst.yml.

Examples:
  mdcst config            # Resolved configuration
  mdcst config --paths    # Which config files were found
  mdcst config --env      # Supported environment variables`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.env {
				return writeEnvVars(cmd)
			}

			sess, err := newSession(cmd, global, nil)
			if err != nil {
				return err
			}

			if flags.paths {
				return writeConfigPaths(cmd, sess.loaded.Paths)
			}

			data, err := sess.cfg.ToYAMLWithHeader(configHeader(sess.loaded.LoadedFrom))
			if err != nil {
				return err
			}
			return sess.writeOutput(cmd, "", data)
		},
	}

	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")
	cmd.Flags().BoolVar(&flags.paths, "paths", false, "show configuration file locations")

	return cmd
}

func configHeader(loadedFrom []string) string {
	var sb strings.Builder
	sb.WriteString("# Resolved mdcst configuration\n")
	if len(loadedFrom) == 0 {
		sb.WriteString("# Sources: defaults\n")
		return sb.String()
	}
	sb.WriteString("# Sources: defaults, " + strings.Join(loadedFrom, ", ") + "\n")
	return sb.String()
}

func writeEnvVars(cmd *cobra.Command) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, v := range configloader.ListEnvVars() {
		fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Description)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeConfigPaths(cmd *cobra.Command, paths *configloader.ConfigPaths) error {
	show := func(path string) string {
		if path == "" {
			return "(none)"
		}
		return path
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "system\t%s\n", show(paths.System))
	fmt.Fprintf(tw, "user\t%s\n", show(paths.User))
	fmt.Fprintf(tw, "project\t%s\n", show(paths.Project))
	fmt.Fprintf(tw, "explicit\t%s\n", show(paths.Explicit))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

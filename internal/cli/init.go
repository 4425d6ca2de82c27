package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcst/internal/logging"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdcst configuration file",
		Long: `Create a new .mdcst.yml configuration file in the current directory.

The minimal template lists every setting commented out; --full writes the
defaults as active settings.

Examples:
  mdcst init                      Create minimal .mdcst.yml
  mdcst init --full               Create a config with every default set
  mdcst init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every default as an active setting")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.DefaultFileName, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	if _, err := os.Stat(flags.output); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: %q already exists; use --force to overwrite", fs.ErrExist, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", flags.output, err)
	}

	content, err := config.GenerateTemplate(flags.full)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), flags.output, content, fsutil.DefaultFileMode); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'mdcst config' to see the resolved configuration")

	return nil
}

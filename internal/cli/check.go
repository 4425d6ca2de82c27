package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcst/internal/logging"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/reporter"
	"github.com/yaklabco/mdcst/pkg/runner"
)

type checkFlags struct {
	report         string
	jobs           int
	crosscheck     bool
	ignore         []string
	extensions     []string
	followSymlinks bool
	verbose        bool
	compact        bool
	noSummary      bool
}

func newCheckCommand(global *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse and verify Markdown files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.report, "report", string(config.ReportFormatText), "report format: text, json, summary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.crosscheck, "crosscheck", false, "compare top-level blocks against goldmark")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to check (default .md, .markdown)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list files that passed")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary")

	return cmd
}

const checkLongDescription = `Parse every Markdown file under the given paths and verify each tree:
the leaves must reproduce the file byte for byte and every node must
cover exactly its children.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Exits with status 1 when any file fails.

Examples:
  mdcst check                        # Check current directory
  mdcst check docs/ README.md        # Check specific paths
  mdcst check --crosscheck           # Also compare block structure with goldmark
  mdcst check --report json          # Machine-readable report
  mdcst check --ignore 'vendor/**'   # Skip a directory`

func runCheck(cmd *cobra.Command, args []string, global *globalFlags, flags *checkFlags) error {
	if !config.ReportFormat(flags.report).IsValid() {
		return usageError(fmt.Errorf("invalid --report %q: must be text, json or summary", flags.report))
	}

	sess, err := newSession(cmd, global, func(cfg *config.Config) {
		set := cmd.Flags().Changed
		if set("report") {
			cfg.Output.Report = config.ReportFormat(flags.report)
		}
		if set("jobs") {
			cfg.Check.Jobs = flags.jobs
		}
		if set("crosscheck") {
			cfg.Check.CrossCheck = flags.crosscheck
		}
		if set("ignore") {
			cfg.Ignore = append(cfg.Ignore, flags.ignore...)
		}
		if set("extensions") {
			cfg.Extensions = flags.extensions
		}
		if set("follow-symlinks") {
			cfg.Check.FollowSymlinks = flags.followSymlinks
		}
	})
	if err != nil {
		return err
	}

	opts := runner.OptionsFromConfig(sess.cfg, args)
	opts.WorkingDir = sess.workDir

	sess.logger.Debug("starting check",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := runner.New(sess.parser()).Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      sess.cfg.Output.Report,
		Color:       sess.cfg.Output.Color,
		ShowSummary: !flags.noSummary,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  sess.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(sess.ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, result.Stats.FilesChecked)
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcst/internal/configloader"
	"github.com/yaklabco/mdcst/internal/logging"
	"github.com/yaklabco/mdcst/pkg/config"
	"github.com/yaklabco/mdcst/pkg/fsutil"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/parser"
	"github.com/yaklabco/mdcst/pkg/runner"
)

// stdinName labels standard input in logs and snapshots.
const stdinName = "<stdin>"

// session is the resolved state shared by a command run.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	logger  *log.Logger
	workDir string
	loaded  *configloader.LoadResult
}

// newSession resolves the configuration for cmd and sets up logging.
// overrides applies the command's own flags after the global ones.
func newSession(cmd *cobra.Command, global *globalFlags, overrides func(cfg *config.Config)) (*session, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        global.configPath,
		IgnoreSystemConfig:  global.noConfig,
		IgnoreUserConfig:    global.noConfig,
		IgnoreProjectConfig: global.noConfig,
		Overrides: func(cfg *config.Config) {
			global.apply(cmd.Flags(), cfg)
			if overrides != nil {
				overrides(cfg)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg := loaded.Config
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loaded.LoadedFrom)
	}

	return &session{
		ctx:     logging.WithLogger(ctx, logger),
		cfg:     cfg,
		logger:  logger,
		workDir: workDir,
		loaded:  loaded,
	}, nil
}

// parser returns a parser with the configured limits. Debug sessions trace
// the block engine.
func (s *session) parser() *parser.Parser {
	var opts []parser.Option
	if s.cfg.Debug {
		opts = append(opts, parser.WithLogger(s.logger))
	}
	return runner.ParserFromConfig(s.cfg, opts...)
}

// parseInput reads path, or stdin for "-", and parses it into a verified
// snapshot.
func (s *session) parseInput(cmd *cobra.Command, path string) (*mdast.FileSnapshot, error) {
	content, info, err := fsutil.ReadInput(s.ctx, path, cmd.InOrStdin(), int64(s.cfg.Parser.MaxInputBytes))
	if err != nil {
		return nil, err
	}

	name := path
	if path == fsutil.StdinPath {
		name = stdinName
	}

	snapshot, err := s.parser().ParseFile(s.ctx, name, content)
	if err != nil {
		return nil, err
	}

	if err := parser.Verify(snapshot.Root, snapshot.Content); err != nil {
		return nil, fmt.Errorf("verify %s: %w", name, err)
	}

	s.logger.Debug("parsed input",
		logging.FieldPath, name,
		logging.FieldBytes, info.Size,
		logging.FieldTokens, len(snapshot.Tokens),
	)
	return snapshot, nil
}

// writeOutput writes data to path atomically, or to the command's stdout
// when path is empty.
func (s *session) writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if err := fsutil.WriteAtomic(s.ctx, path, data, 0); err != nil {
		return err
	}
	s.logger.Info("wrote output", logging.FieldOutput, path, logging.FieldBytes, len(data))
	return nil
}

// inputPath returns the single positional path, defaulting to stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return fsutil.StdinPath
	}
	return args[0]
}

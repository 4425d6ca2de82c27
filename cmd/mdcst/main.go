// Package main is the entry point for the mdcst CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdcst/internal/cli"
	"github.com/yaklabco/mdcst/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	// ErrCheckFailed is only a signal for the exit code; the report says why.
	if err != nil && !errors.Is(err, cli.ErrCheckFailed) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}

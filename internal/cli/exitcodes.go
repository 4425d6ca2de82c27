package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcst/internal/configloader"
	"github.com/yaklabco/mdcst/pkg/fsutil"
	"github.com/yaklabco/mdcst/pkg/parser"
)

// Exit codes for mdcst.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates failed checks or input rejected by a limit.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrCheckFailed is returned when at least one checked file failed.
	ErrCheckFailed = errors.New("check failed")

	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")
)

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCheckFailed),
		errors.Is(err, parser.ErrResourceLimit),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitFailure
	// cobra reports unknown subcommands as plain errors.
	case errors.Is(err, ErrUsage), strings.HasPrefix(err.Error(), "unknown command"):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrExist):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

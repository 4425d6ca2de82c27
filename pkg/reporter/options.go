package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdcst/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.ReportFormat

	// Color controls colorized output.
	Color config.ColorMode

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Verbose lists files that passed as well as failures.
	Verbose bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.ReportFormatText,
		Color:       config.ColorAuto,
		ShowSummary: true,
	}
}

package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/runner"
)

// TextReporter formats results as styled terminal output, one line per
// reported file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		if !file.Failed() && !r.opts.Verbose {
			continue
		}
		r.writeFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failedCount(result), nil
}

// writeFile writes "path: status[: detail]" followed by one indented line
// per cross-check mismatch.
func (r *TextReporter) writeFile(file runner.FileOutcome) {
	path := r.styles.FilePath.Render(makeRelativePath(file.Path, r.opts.WorkingDir))
	status := r.styles.Status(file.Status).Render(string(file.Status))

	switch {
	case file.Error != nil:
		fmt.Fprintf(r.bw, "%s: %s: %s\n", path, status, r.styles.Message.Render(file.Error.Error()))
	case file.Status == runner.StatusOK:
		fmt.Fprintf(r.bw, "%s: %s %s\n", path, status,
			r.styles.Dim.Render(fmt.Sprintf("(%d bytes, %d nodes, depth %d)", file.Bytes, file.Nodes, file.Depth)))
	default:
		fmt.Fprintf(r.bw, "%s: %s\n", path, status)
	}

	for _, mismatch := range file.Mismatches {
		fmt.Fprintf(r.bw, "  %s\n", r.styles.Message.Render(mismatch.String()))
	}
}

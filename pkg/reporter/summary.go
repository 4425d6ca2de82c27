package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdcst/internal/ui/pretty"
	"github.com/yaklabco/mdcst/pkg/runner"
)

// SummaryReporter formats results as a per-file table followed by
// aggregate statistics.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	table  *pretty.TableFormatter
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	return &SummaryReporter{
		opts:   opts,
		styles: styles,
		table:  pretty.NewTableFormatter(styles, pretty.TermWidth(opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.table.FormatTable(result, func(path string) string {
		return makeRelativePath(path, r.opts.WorkingDir)
	}))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	}

	return failedCount(result), nil
}

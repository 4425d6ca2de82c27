package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdcst/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 6 // FILE, STATUS, BYTES, NODES, DEPTH, TIME
	minFileWidth     = 20
	statusWidth      = 8
	numberWidth      = 8
	timeWidth        = 10
	heavySeparator   = "="
	lightSeparator   = "-"
)

// TableRow represents a single row in the file table.
type TableRow struct {
	File     string
	Status   runner.Status
	Bytes    string
	Nodes    string
	Depth    string
	Duration string
}

// TableFormatter formats file outcomes as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats runner results as a styled table, one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result, paths func(string) string) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		path := file.Path
		if paths != nil {
			path = paths(path)
		}
		rows = append(rows, OutcomeToTableRow(path, file))
	}

	fileWidth := t.fileWidth(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(fileWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(fileWidth, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, fileWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(fileWidth, lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(t.FormatTableSummary(result.Stats))
	builder.WriteString("\n")

	return builder.String()
}

// fileWidth sizes the FILE column to its content within the terminal.
func (t *TableFormatter) fileWidth(rows []TableRow) int {
	width := minFileWidth
	for _, row := range rows {
		width = max(width, len(row.File))
	}

	fixed := statusWidth + 3*numberWidth + timeWidth + tablePadding*tableColumnCount
	if width+fixed > t.termWidth {
		width = max(minFileWidth, t.termWidth-fixed)
	}
	return width
}

func (t *TableFormatter) totalWidth(fileWidth int) int {
	return fileWidth + statusWidth + 3*numberWidth + timeWidth + tablePadding*(tableColumnCount-1) + 1
}

func (t *TableFormatter) formatHeader(fileWidth int) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s  %*s",
		fileWidth, "FILE",
		statusWidth, "STATUS",
		numberWidth, "BYTES",
		numberWidth, "NODES",
		numberWidth, "DEPTH",
		timeWidth, "TIME",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(fileWidth int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(fileWidth)))
}

// formatRow pads the status before styling so ANSI sequences do not skew
// the column widths.
func (t *TableFormatter) formatRow(row TableRow, fileWidth int) string {
	status := fmt.Sprintf("%-*s", statusWidth, row.Status)
	return fmt.Sprintf(" %-*s  %s  %*s  %*s  %*s  %*s",
		fileWidth, truncateFilePath(row.File, fileWidth),
		t.styles.Status(row.Status).Render(status),
		numberWidth, row.Bytes,
		numberWidth, row.Nodes,
		numberWidth, row.Depth,
		timeWidth, row.Duration,
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d files checked", stats.FilesChecked)}

	counts := []struct {
		n      int
		status runner.Status
	}{
		{stats.FilesOK, runner.StatusOK},
		{stats.FilesInvalid, runner.StatusInvalid},
		{stats.FilesMismatched, runner.StatusMismatch},
		{stats.FilesLimited, runner.StatusLimit},
		{stats.FilesErrored, runner.StatusError},
	}
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, t.styles.Status(c.status).Render(fmt.Sprintf("%d %s", c.n, c.status)))
		}
	}

	return " " + strings.Join(parts, " | ")
}

// OutcomeToTableRow converts a file outcome to a table row. Failed reads
// show dashes for the tree columns.
func OutcomeToTableRow(path string, outcome runner.FileOutcome) TableRow {
	row := TableRow{
		File:     path,
		Status:   outcome.Status,
		Bytes:    strconv.Itoa(outcome.Bytes),
		Nodes:    "-",
		Depth:    "-",
		Duration: outcome.Duration.Round(time.Microsecond).String(),
	}
	if outcome.Status == runner.StatusOK || outcome.Nodes > 0 {
		row.Nodes = strconv.Itoa(outcome.Nodes)
		row.Depth = strconv.Itoa(outcome.Depth)
	}
	return row
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}

package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcst/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 12 files failed (1 invalid, 1 limit), 48213 bytes".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := stats.FilesChecked
	if stats.FilesFailed() == 0 {
		return s.Success.Render("All files parsed") +
			s.Dim.Render(fmt.Sprintf(" (%d %s, %d bytes)", checked, plural(checked, wordFile, wordFiles), stats.BytesTotal)) +
			"\n"
	}

	var breakdown []string
	add := func(n int, status runner.Status) {
		if n > 0 {
			breakdown = append(breakdown, s.Status(status).Render(fmt.Sprintf("%d %s", n, status)))
		}
	}
	add(stats.FilesInvalid, runner.StatusInvalid)
	add(stats.FilesMismatched, runner.StatusMismatch)
	add(stats.FilesLimited, runner.StatusLimit)
	add(stats.FilesErrored, runner.StatusError)

	return fmt.Sprintf("%s (%s), %d bytes\n",
		s.Failure.Render(fmt.Sprintf("%d of %d %s failed", stats.FilesFailed(), checked, plural(checked, wordFile, wordFiles))),
		strings.Join(breakdown, ", "),
		stats.BytesTotal,
	)
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesChecked)))
	row("Files ok", s.OK.Render(strconv.Itoa(stats.FilesOK)))

	failures := []struct {
		label  string
		count  int
		status runner.Status
	}{
		{"Invalid trees", stats.FilesInvalid, runner.StatusInvalid},
		{"Mismatches", stats.FilesMismatched, runner.StatusMismatch},
		{"Limit exceeded", stats.FilesLimited, runner.StatusLimit},
		{"Read errors", stats.FilesErrored, runner.StatusError},
	}
	for _, f := range failures {
		if f.count > 0 {
			row(f.label, s.Status(f.status).Render(strconv.Itoa(f.count)))
		}
	}

	builder.WriteString("\n")
	row("Bytes", s.SummaryValue.Render(strconv.Itoa(stats.BytesTotal)))
	row("Tokens", s.SummaryValue.Render(strconv.Itoa(stats.TokensTotal)))
	row("Nodes", s.SummaryValue.Render(strconv.Itoa(stats.NodesTotal)))
	row("Max depth", s.SummaryValue.Render(strconv.Itoa(stats.MaxDepth)))
	builder.WriteString("\n")

	if stats.FilesFailed() > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdcst/pkg/crosscheck"
	"github.com/yaklabco/mdcst/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path       string                `json:"path"`
	Status     runner.Status         `json:"status"`
	Hash       string                `json:"sha256,omitempty"`
	Bytes      int                   `json:"bytes"`
	Tokens     int                   `json:"tokens"`
	Nodes      int                   `json:"nodes"`
	Depth      int                   `json:"depth"`
	DurationMS float64               `json:"durationMs"`
	Mismatches []crosscheck.Mismatch `json:"mismatches,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesOK         int `json:"filesOk"`
	FilesFailed     int `json:"filesFailed"`
	FilesInvalid    int `json:"filesInvalid"`
	FilesMismatched int `json:"filesMismatched"`
	FilesLimited    int `json:"filesLimited"`
	FilesErrored    int `json:"filesErrored"`
	Bytes           int `json:"bytes"`
	Tokens          int `json:"tokens"`
	Nodes           int `json:"nodes"`
	MaxDepth        int `json:"maxDepth"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesFailed, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:       makeRelativePath(file.Path, r.opts.WorkingDir),
			Status:     file.Status,
			Hash:       file.Hash,
			Bytes:      file.Bytes,
			Tokens:     file.Tokens,
			Nodes:      file.Nodes,
			Depth:      file.Depth,
			DurationMS: float64(file.Duration.Microseconds()) / 1000,
			Mismatches: file.Mismatches,
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked:    stats.FilesChecked,
		FilesOK:         stats.FilesOK,
		FilesFailed:     stats.FilesFailed(),
		FilesInvalid:    stats.FilesInvalid,
		FilesMismatched: stats.FilesMismatched,
		FilesLimited:    stats.FilesLimited,
		FilesErrored:    stats.FilesErrored,
		Bytes:           stats.BytesTotal,
		Tokens:          stats.TokensTotal,
		Nodes:           stats.NodesTotal,
		MaxDepth:        stats.MaxDepth,
	}

	return output
}

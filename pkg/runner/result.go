package runner

import (
	"time"

	"github.com/yaklabco/mdcst/pkg/crosscheck"
)

// Status classifies the outcome of checking one file.
type Status string

const (
	// StatusOK means the file parsed into a valid tree that agrees with
	// goldmark when cross-checking is enabled.
	StatusOK Status = "ok"

	// StatusInvalid means the tree failed verification.
	StatusInvalid Status = "invalid"

	// StatusMismatch means the top-level blocks differ from goldmark's.
	StatusMismatch Status = "mismatch"

	// StatusLimit means a resource limit rejected the file.
	StatusLimit Status = "limit"

	// StatusError means the file could not be read.
	StatusError Status = "error"
)

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	Path     string
	Status   Status
	Hash     string
	Bytes    int
	Tokens   int
	Nodes    int
	Depth    int
	Duration time.Duration

	// Mismatches is set for StatusMismatch.
	Mismatches []crosscheck.Mismatch

	// Error is set for StatusInvalid, StatusLimit and StatusError.
	Error error
}

// Failed reports whether the outcome counts as a failure.
func (o FileOutcome) Failed() bool {
	return o.Status != StatusOK
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesChecked    int
	FilesOK         int
	FilesInvalid    int
	FilesMismatched int
	FilesLimited    int
	FilesErrored    int

	BytesTotal  int
	TokensTotal int
	NodesTotal  int
	MaxDepth    int
}

// FilesFailed is the number of files with any non-ok status.
func (s Stats) FilesFailed() int {
	return s.FilesInvalid + s.FilesMismatched + s.FilesLimited + s.FilesErrored
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed() > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesChecked++

	switch outcome.Status {
	case StatusOK:
		r.Stats.FilesOK++
	case StatusInvalid:
		r.Stats.FilesInvalid++
	case StatusMismatch:
		r.Stats.FilesMismatched++
	case StatusLimit:
		r.Stats.FilesLimited++
	case StatusError:
		r.Stats.FilesErrored++
	}

	r.Stats.BytesTotal += outcome.Bytes
	r.Stats.TokensTotal += outcome.Tokens
	r.Stats.NodesTotal += outcome.Nodes
	r.Stats.MaxDepth = max(r.Stats.MaxDepth, outcome.Depth)
}

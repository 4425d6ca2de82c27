package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdcst/internal/logging"
	"github.com/yaklabco/mdcst/pkg/crosscheck"
	"github.com/yaklabco/mdcst/pkg/fsutil"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/parser"
)

// Runner checks files with a shared parser. It is safe for concurrent use.
type Runner struct {
	parser  *parser.Parser
	checker *crosscheck.Checker
}

// New creates a runner. A nil parser means parser.New().
func New(p *parser.Parser) *Runner {
	if p == nil {
		p = parser.New()
	}
	return &Runner{parser: p, checker: crosscheck.New()}
}

// Run discovers files under opts.Paths and checks them concurrently. The
// outcomes are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	logger.Debug("checking files", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Go(func() {
			for path := range workCh {
				outcome := r.CheckFile(ctx, path, opts)
				select {
				case <-ctx.Done():
					return
				case outCh <- outcome:
				}
			}
		})
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesOK, result.Stats.FilesOK,
		logging.FieldFilesFailed, result.Stats.FilesFailed(),
	)
	return result, nil
}

// CheckFile reads, parses and verifies one file.
func (r *Runner) CheckFile(ctx context.Context, path string, opts Options) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)

	start := time.Now()
	outcome := r.checkFile(ctx, path, opts)
	outcome.Duration = time.Since(start)

	logging.FromContext(ctx).Debug("checked file",
		logging.FieldStatus, outcome.Status,
		logging.FieldBytes, outcome.Bytes,
		logging.FieldNodes, outcome.Nodes,
		logging.FieldDuration, outcome.Duration,
	)
	return outcome
}

func (r *Runner) checkFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path, opts.MaxFileBytes)
	if err != nil {
		outcome.Status = StatusError
		if errors.Is(err, fsutil.ErrTooLarge) {
			outcome.Status = StatusLimit
		}
		outcome.Error = err
		return outcome
	}
	outcome.Hash = info.HashHex()
	outcome.Bytes = len(content)

	snapshot, err := r.parser.ParseFile(ctx, path, content)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrResourceLimit):
			outcome.Status = StatusLimit
		case errors.Is(err, mdast.ErrInvalidTokens):
			outcome.Status = StatusInvalid
		default:
			outcome.Status = StatusError
		}
		outcome.Error = err
		return outcome
	}

	outcome.Tokens = len(snapshot.Tokens)
	outcome.Nodes, outcome.Depth = treeStats(snapshot.Root)

	if err := parser.Verify(snapshot.Root, snapshot.Content); err != nil {
		outcome.Status = StatusInvalid
		outcome.Error = err
		return outcome
	}

	if opts.CrossCheck {
		if mismatches := r.checker.Compare(snapshot.Content, snapshot.Root); len(mismatches) > 0 {
			outcome.Status = StatusMismatch
			outcome.Mismatches = mismatches
			return outcome
		}
	}

	outcome.Status = StatusOK
	return outcome
}

// treeStats counts composite nodes and returns the deepest composite's
// depth below the root.
func treeStats(root *mdast.Node) (int, int) {
	nodes, depth, level := 0, 0, -1

	_ = mdast.Walk(root, func(n *mdast.Node, entering bool) (mdast.WalkStatus, error) {
		switch {
		case n.IsLeaf():
		case entering:
			level++
			nodes++
			depth = max(depth, level)
		default:
			level--
		}
		return mdast.WalkContinue, nil
	})

	return nodes, depth
}

package runner

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/yaklabco/refix/internal/logging"
	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/document"
	"github.com/yaklabco/refix/pkg/edit"
	"github.com/yaklabco/refix/pkg/review"
)

// Runner applies a review's fixes across files. Distinct files are
// processed concurrently on a worker pool; fixes for the same file are
// applied strictly sequentially against one live document.
type Runner struct {
	applier *apply.Applier
	opts    Options
}

// New creates a Runner with the given options.
func New(opts Options) *Runner {
	return &Runner{
		applier: apply.New(opts.Match),
		opts:    opts,
	}
}

// Run applies every fix in the review and returns deterministic
// per-file outcomes with aggregate stats. File outcomes are ordered by
// path regardless of worker completion order.
func (r *Runner) Run(ctx context.Context, rev *review.Review) (*Result, error) {
	grouped := rev.FixesByFile()
	paths := make([]string, 0, len(grouped))
	for path := range grouped {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	result := &Result{
		Files: make([]FileOutcome, 0, len(paths)),
		Stats: newStats(),
	}
	result.Stats.FilesTargeted = len(paths)

	if len(paths) == 0 {
		return result, nil
	}

	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, grouped)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range paths {
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

	// Workers complete out of order; collect then rebuild by path.
	outcomes := make(map[string]FileOutcome, len(paths))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range paths {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker processes one file at a time from workCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, grouped map[string][]review.Fix) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, grouped[path])

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile opens the document, applies the file's fixes in order,
// and commits at most one write.
func (r *Runner) processFile(ctx context.Context, path string, fixes []review.Fix) FileOutcome {
	logger := logging.FromContext(ctx)
	logger.Debug("applying fixes", logging.FieldPath, path, logging.FieldFixesTotal, len(fixes))

	outcome := FileOutcome{Path: path, Results: make([]apply.Result, 0, len(fixes))}

	doc, err := document.Open(ctx, r.opts.WorkingDir, path)
	if err != nil {
		logger.Debug("file unavailable", logging.FieldPath, path, logging.FieldError, err)
		for i := range fixes {
			outcome.Results = append(outcome.Results, apply.FileUnavailable(&fixes[i], err))
		}
		return outcome
	}
	outcome.Language = doc.Language()

	for i := range fixes {
		outcome.Results = append(outcome.Results, r.applier.Apply(&fixes[i], doc))
	}

	if !doc.Modified() {
		return outcome
	}
	outcome.Diff = edit.Generate(path, doc.OriginalText(), doc.Text())

	if r.opts.DryRun {
		return outcome
	}

	commit, err := doc.Commit(ctx, r.opts.Backup)
	if err != nil {
		logger.Warn("commit failed", logging.FieldPath, path, logging.FieldError, err)
		outcome.markUnwritten(err)
		return outcome
	}

	outcome.Written = commit.Written
	outcome.BackupCreated = commit.BackupCreated
	return outcome
}

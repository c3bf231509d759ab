package runner

import (
	"fmt"

	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/edit"
)

// FileOutcome is the result of applying one file's fixes.
type FileOutcome struct {
	// Path is the review-relative file path.
	Path string

	// Language is the detected language of the file, empty when the
	// file could not be opened.
	Language string

	// Results holds one apply result per fix, in review order.
	Results []apply.Result

	// Diff is the unified diff of the in-memory changes, nil when
	// nothing changed.
	Diff *edit.Diff

	// Written is true when the file was committed to disk.
	Written bool

	// BackupCreated is true when a sidecar backup was created.
	BackupCreated bool
}

// markUnwritten records a failed commit: nothing reached disk, so edits
// recorded as applied did not stick and the diff no longer describes
// anything on disk. Already-applied results stand; the file held their
// replacement before this run touched it.
func (o *FileOutcome) markUnwritten(err error) {
	o.Diff = nil
	for i := range o.Results {
		if o.Results[i].Applied && o.Results[i].Reason == apply.ReasonApplied {
			o.Results[i].Applied = false
			o.Results[i].Reason = apply.ReasonEditRejected
			o.Results[i].Message = fmt.Sprintf("commit failed: %v", err)
		}
	}
}

// Applied counts the fixes that succeeded, including idempotent
// already-applied outcomes.
func (o FileOutcome) Applied() int {
	n := 0
	for _, r := range o.Results {
		if r.Applied {
			n++
		}
	}
	return n
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesTargeted is the number of distinct files named by fixes.
	FilesTargeted int

	// FilesModified is the number of files written to disk (or that
	// would be written, in a dry run).
	FilesModified int

	// FixesTotal is the total number of fixes attempted.
	FixesTotal int

	// FixesApplied is the number of fixes that performed an edit.
	FixesApplied int

	// FixesAlreadyApplied is the number of idempotent successes.
	FixesAlreadyApplied int

	// FixesFailed is the number of fixes that could not be applied.
	FixesFailed int

	// FailuresByReason maps failure reason tokens to counts.
	FailuresByReason map[string]int

	// MatchesByStrategy maps winning strategy names to counts.
	MatchesByStrategy map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each targeted file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any fix could not be applied.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FixesFailed > 0
}

// newStats creates a Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FailuresByReason:  make(map[string]int),
		MatchesByStrategy: make(map[string]int),
	}
}

// accumulate folds one file outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Written || (outcome.Diff != nil && outcome.Diff.HasChanges()) {
		r.Stats.FilesModified++
	}

	for _, res := range outcome.Results {
		r.Stats.FixesTotal++
		switch {
		case res.Applied && res.Reason == apply.ReasonAlreadyApplied:
			r.Stats.FixesAlreadyApplied++
		case res.Applied:
			r.Stats.FixesApplied++
			if res.Strategy != "" {
				r.Stats.MatchesByStrategy[res.Strategy]++
			}
		default:
			r.Stats.FixesFailed++
			r.Stats.FailuresByReason[string(res.Reason)]++
		}
	}
}

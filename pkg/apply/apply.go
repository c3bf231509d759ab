// Package apply orchestrates the application of a single fix to a live
// document: it runs the matching strategy ladder, performs at most one
// replacement, and reports a structured result. Failures are reported
// through the result, never as returned errors, so callers branch on
// data rather than error chains.
package apply

import (
	"fmt"

	"github.com/yaklabco/refix/pkg/match"
	"github.com/yaklabco/refix/pkg/review"
)

// Reason classifies the outcome of an apply attempt. The values are
// stable tokens suitable for machine-readable output.
type Reason string

const (
	// ReasonApplied marks a successful replacement.
	ReasonApplied Reason = "applied"

	// ReasonAlreadyApplied marks an idempotent success: the replacement
	// text is already present and no edit was performed.
	ReasonAlreadyApplied Reason = "already-applied"

	// ReasonFileUnavailable marks a target file that could not be
	// opened or read.
	ReasonFileUnavailable Reason = "file-unavailable"

	// ReasonRangeOutOfBounds marks a snippet-less fix whose declared
	// lines exceed the document.
	ReasonRangeOutOfBounds Reason = "range-out-of-bounds"

	// ReasonSnippetNotFound marks a fix whose expected snippet could
	// not be located by any strategy.
	ReasonSnippetNotFound Reason = "snippet-not-found"

	// ReasonEditRejected marks a located fix whose edit the document
	// refused.
	ReasonEditRejected Reason = "edit-rejected"
)

// Result is the structured outcome of one apply attempt.
type Result struct {
	// FixID identifies the fix this result belongs to.
	FixID string `json:"fixId"`

	// Path is the target file, relative to the working tree.
	Path string `json:"path"`

	// Applied is true when the document now contains the replacement,
	// whether this call performed the edit or found it already present.
	Applied bool `json:"applied"`

	// Reason classifies the outcome.
	Reason Reason `json:"reason"`

	// Message is a human-readable elaboration of the reason.
	Message string `json:"message,omitempty"`

	// Strategy names the matching strategy that located the region,
	// when one did.
	Strategy string `json:"strategy,omitempty"`

	// Score is the fuzzy match score, when the fuzzy strategy won.
	Score float64 `json:"score,omitempty"`
}

// Target is the document surface the orchestrator needs: read access
// for matching plus a single-range replacement. *document.Document
// satisfies it.
type Target interface {
	match.Source

	// Replace substitutes the text covered by r.
	Replace(r match.LineRange, replacement string) error

	// ReplaceLines substitutes the whole 1-based inclusive line range.
	ReplaceLines(startLine, endLine int, replacement string) error
}

// Applier runs the strategy ladder with a fixed set of search options.
type Applier struct {
	opts match.Options
}

// New returns an Applier using the given search options.
func New(opts match.Options) *Applier {
	return &Applier{opts: opts}
}

// NewDefault returns an Applier with the standard search parameters.
func NewDefault() *Applier {
	return New(match.DefaultOptions())
}

// Apply attempts to apply fix to doc. Exactly one mutation happens on
// success; none on failure or on the idempotent already-applied path.
func (a *Applier) Apply(fix *review.Fix, doc Target) Result {
	result := Result{FixID: fix.ID, Path: fix.FilePath}

	if !fix.HasSnippet() {
		return a.applyByLineRange(fix, doc, result)
	}

	snippet := *fix.ExpectedOriginalSnippet
	hint := fix.Hint()

	candidate, strategy := match.Locate(doc, snippet, hint, match.Ladder(a.opts))
	if candidate != nil {
		if err := doc.Replace(candidate.Range, fix.Replacement); err != nil {
			result.Reason = ReasonEditRejected
			result.Message = fmt.Sprintf("edit rejected: %v", err)
			return result
		}
		result.Applied = true
		result.Reason = ReasonApplied
		result.Strategy = strategy
		result.Score = candidate.Score
		return result
	}

	if match.IsAlreadyApplied(doc, fix.Replacement, hint, a.opts.AppliedRadius) {
		result.Applied = true
		result.Reason = ReasonAlreadyApplied
		result.Message = "replacement already present, no edit performed"
		return result
	}

	result.Reason = ReasonSnippetNotFound
	result.Message = "could not find original snippet: file modified or fix already applied"
	return result
}

// applyByLineRange handles fixes with no content anchor at all. It
// trusts the declared line numbers completely, so it only ever runs as
// a last resort.
func (a *Applier) applyByLineRange(fix *review.Fix, doc Target, result Result) Result {
	if fix.EndLine > doc.LineCount() {
		result.Reason = ReasonRangeOutOfBounds
		result.Message = fmt.Sprintf("declared range %d-%d exceeds document length %d", fix.StartLine, fix.EndLine, doc.LineCount())
		return result
	}

	if err := doc.ReplaceLines(fix.StartLine, fix.EndLine, fix.Replacement); err != nil {
		result.Reason = ReasonEditRejected
		result.Message = fmt.Sprintf("edit rejected: %v", err)
		return result
	}

	result.Applied = true
	result.Reason = ReasonApplied
	return result
}

// CanApply reports whether the fix is still viable without mutating the
// document. For anchored fixes it runs the exact and normalized
// strategies only; the fuzzy fallback is excluded so pre-flight stays
// conservative. For snippet-less fixes viability is a bounds check.
func (a *Applier) CanApply(fix *review.Fix, doc Target) bool {
	if !fix.HasSnippet() {
		return fix.EndLine <= doc.LineCount()
	}
	candidate, _ := match.Locate(doc, *fix.ExpectedOriginalSnippet, fix.Hint(), match.PreflightLadder(a.opts))
	return candidate != nil
}

// FileUnavailable builds the result recorded for every fix whose target
// file could not be opened.
func FileUnavailable(fix *review.Fix, err error) Result {
	return Result{
		FixID:   fix.ID,
		Path:    fix.FilePath,
		Reason:  ReasonFileUnavailable,
		Message: fmt.Sprintf("unable to open file: %v", err),
	}
}

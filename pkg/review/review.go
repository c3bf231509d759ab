// Package review defines the fix data model produced by an upstream
// review step and the loaders that read review files from disk.
package review

import (
	"errors"
	"fmt"

	"github.com/yaklabco/refix/pkg/match"
)

// ErrInvalidReview indicates a review that failed schema validation.
var ErrInvalidReview = errors.New("invalid review")

// Fix is one proposed text replacement, anchored to a declared line
// range and optionally the literal original text it expects to replace.
// The anchors come from an earlier model step and may be stale; they
// bias the search for the real region but are never trusted outright.
type Fix struct {
	// ID uniquely identifies the fix within its review.
	ID string `json:"id"`

	// Title is a short human-readable description.
	Title string `json:"title"`

	// FilePath is the target file, relative to the working tree root.
	FilePath string `json:"filePath"`

	// StartLine is the declared 1-based first line of the region.
	StartLine int `json:"startLine"`

	// EndLine is the declared 1-based last line, inclusive.
	EndLine int `json:"endLine"`

	// Replacement is the text to substitute for the located region.
	Replacement string `json:"replacement"`

	// ExpectedOriginalSnippet is the text the fix expects to find at
	// the anchor, or nil when the upstream step produced no content
	// anchor at all. The field must be present in the source document,
	// explicitly null when absent.
	ExpectedOriginalSnippet *string `json:"expectedOriginalSnippet"`
}

// HasSnippet reports whether the fix carries a usable content anchor.
// An empty snippet anchors nothing and is treated like a missing one.
func (f *Fix) HasSnippet() bool {
	return f.ExpectedOriginalSnippet != nil && *f.ExpectedOriginalSnippet != ""
}

// Hint returns the declared line range as a search bias.
func (f *Fix) Hint() *match.Hint {
	return &match.Hint{StartLine: f.StartLine, EndLine: f.EndLine}
}

// Finding is a narrative review observation with no attached patch.
type Finding struct {
	// Severity is a free-form level such as "error" or "warning".
	Severity string `json:"severity"`

	// Message is the reviewer's observation.
	Message string `json:"message"`

	// FilePath optionally names the file the finding concerns.
	FilePath string `json:"filePath,omitempty"`

	// Line optionally names the 1-based line the finding concerns.
	Line int `json:"line,omitempty"`
}

// Review is the machine-readable output of one review run.
type Review struct {
	// Findings holds narrative observations, possibly empty.
	Findings []Finding `json:"findings,omitempty"`

	// Fixes holds the proposed replacements.
	Fixes []Fix `json:"fixes"`
}

// Validate checks field-level constraints and ID uniqueness.
func (r *Review) Validate() error {
	seen := make(map[string]int, len(r.Fixes))
	for i := range r.Fixes {
		f := &r.Fixes[i]
		if f.FilePath == "" {
			return fmt.Errorf("%w: fix %d (%s): filePath is required", ErrInvalidReview, i, f.ID)
		}
		if f.StartLine < 1 {
			return fmt.Errorf("%w: fix %d (%s): startLine must be >= 1, got %d", ErrInvalidReview, i, f.ID, f.StartLine)
		}
		if f.EndLine < f.StartLine {
			return fmt.Errorf("%w: fix %d (%s): endLine %d precedes startLine %d", ErrInvalidReview, i, f.ID, f.EndLine, f.StartLine)
		}
		if prev, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: fixes %d and %d share id %q", ErrInvalidReview, prev, i, f.ID)
		}
		seen[f.ID] = i
	}
	return nil
}

// FixesByFile groups fixes by target path, preserving review order
// within each file.
func (r *Review) FixesByFile() map[string][]Fix {
	grouped := make(map[string][]Fix)
	for _, f := range r.Fixes {
		grouped[f.FilePath] = append(grouped[f.FilePath], f)
	}
	return grouped
}

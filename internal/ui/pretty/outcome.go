package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/refix/pkg/analysis"
)

// Reason token for the idempotent success outcome.
const reasonAlreadyApplied = "already-applied"

// FormatFixOutcome formats a single fix outcome for terminal output.
func (s *Styles) FormatFixOutcome(entry *analysis.FixEntry) string {
	var builder strings.Builder

	status := s.FormatStatus(entry.Applied, entry.Reason)

	strategy := ""
	switch {
	case entry.Strategy != "" && entry.Score > 0:
		strategy = s.Strategy.Render(fmt.Sprintf("(%s %.2f)", entry.Strategy, entry.Score))
	case entry.Strategy != "":
		strategy = s.Strategy.Render("(" + entry.Strategy + ")")
	}

	builder.WriteString(fmt.Sprintf("  %s  %s", s.Dim.Render(entry.FixID), status))
	if strategy != "" {
		builder.WriteString("  " + strategy)
	}
	if entry.Message != "" {
		builder.WriteString("  " + s.Message.Render(entry.Message))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatStatus returns a styled status word for an outcome.
func (s *Styles) FormatStatus(applied bool, reason string) string {
	switch {
	case applied && reason == reasonAlreadyApplied:
		return s.Skipped.Render("already applied")
	case applied:
		return s.Applied.Render("applied")
	default:
		return s.Failure.Render("failed")
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(file *analysis.FileAnalysis) string {
	header := s.FilePath.Render(file.Path)

	var notes []string
	if file.Language != "" && file.Language != "text" {
		notes = append(notes, file.Language)
	}
	fixWord := "fixes"
	if file.Fixes == 1 {
		fixWord = "fix"
	}
	notes = append(notes, fmt.Sprintf("%d %s", file.Fixes, fixWord))
	if file.Failed > 0 {
		notes = append(notes, fmt.Sprintf("%d failed", file.Failed))
	}

	return header + s.Dim.Render(" ("+strings.Join(notes, ", ")+")")
}

package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/refix/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "4 applied, 1 already applied, 2 failed in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FixesTotal == 0 {
		return s.Success.Render("No fixes to apply") + "\n"
	}

	var parts []string

	if stats.FixesApplied > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d applied", stats.FixesApplied)))
	}
	if stats.FixesAlreadyApplied > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d already applied", stats.FixesAlreadyApplied)))
	}
	if stats.FixesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FixesFailed)))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d fixes", stats.FixesTotal))
	}

	fileWord := wordFiles
	if stats.FilesTargeted == 1 {
		fileWord = wordFile
	}

	return strings.Join(parts, ", ") + fmt.Sprintf(" in %d %s", stats.FilesTargeted, fileWord) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files targeted:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesTargeted)) + "\n")

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total fixes:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FixesTotal)) + "\n")

	if stats.FixesApplied > 0 {
		builder.WriteString("    Applied:         " +
			s.Success.Render(strconv.Itoa(stats.FixesApplied)) + "\n")
	}
	if stats.FixesAlreadyApplied > 0 {
		builder.WriteString("    Already applied: " +
			s.SummaryValue.Render(strconv.Itoa(stats.FixesAlreadyApplied)) + "\n")
	}
	if stats.FixesFailed > 0 {
		builder.WriteString("    Failed:          " +
			s.Failure.Render(strconv.Itoa(stats.FixesFailed)) + "\n")

		reasons := make([]string, 0, len(stats.FailuresByReason))
		for reason := range stats.FailuresByReason {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			builder.WriteString(fmt.Sprintf("      %s: %s\n",
				reason, s.Failure.Render(strconv.Itoa(stats.FailuresByReason[reason]))))
		}
	}

	builder.WriteString("\n")

	switch {
	case stats.FixesFailed > 0:
		builder.WriteString(s.Failure.Render("Some fixes could not be applied"))
	case stats.FixesTotal == 0:
		builder.WriteString(s.Success.Render("Nothing to do"))
	default:
		builder.WriteString(s.Success.Render("All fixes applied"))
	}
	builder.WriteString("\n")

	return builder.String()
}
